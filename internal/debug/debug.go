package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Refresh overlay text every N frames to limit allocations.
	updateInterval = 30
)

// Overlay draws runtime counters (FPS, heap) in the top-right corner. All
// counters are off by default and toggled from the console.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns an overlay with every counter hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the enabled counters. Call last in the draw loop so the
// overlay sits above the scene and console.
func (o *Overlay) Draw() {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0 || o.fpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if refresh {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRightAligned(o.fpsText, screenW, y)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		drawRightAligned(o.memText, screenW, y)
	}
}

func drawRightAligned(text string, screenW, y int32) {
	if text == "" {
		return
	}
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
