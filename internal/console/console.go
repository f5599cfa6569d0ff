package console

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-composer/internal/commands"
	"scene-composer/internal/logger"
)

const (
	barHeight = 40
	// When windowed, move the bar up so it stays visible above taskbar/window
	// bounds.
	windowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	logBgColor  = rl.NewColor(24, 24, 24, 240)
	errorColor  = rl.NewColor(235, 120, 120, 255)
)

// Console is the command input bar at the bottom of the screen, toggled with
// ESC. When open it captures typing; every submitted line runs through the
// command registry (see the commands package for the verb set). While closed
// the camera has the keyboard and mouse.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	history  []string
	histPos  int // index into history while browsing; len(history) = live input
	open     bool
}

// New returns a closed console that logs lines and executes them via reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC (toggle), and while open: typing, backspace, history
// browsing with up/down, and enter to submit. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
		if c.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if !c.open {
		return
	}
	for {
		ch := rl.GetCharPressed()
		if ch == 0 {
			break
		}
		c.inputBuf += string(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && c.histPos > 0 {
		c.histPos--
		c.inputBuf = c.history[c.histPos]
	}
	if rl.IsKeyPressed(rl.KeyDown) && c.histPos < len(c.history) {
		c.histPos++
		if c.histPos == len(c.history) {
			c.inputBuf = ""
		} else {
			c.inputBuf = c.history[c.histPos]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.history = append(c.history, line)
		c.histPos = len(c.history)
		c.inputBuf = ""
		c.log.Log(prompt + line)
		if err := c.reg.Execute(line); err != nil {
			c.log.Log("error: " + err.Error())
		}
	}
}

// Draw draws the input bar at the bottom when open, with recent log lines
// above it. Uses GetScreenWidth/Height so the bar matches the 2D overlay
// coordinate system.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - barHeight
	if !rl.IsWindowFullscreen() {
		barY -= windowedBarOffset
	}

	logHeight := maxLinesOnScreen * lineHeight
	logY := barY - logHeight
	if logY < 0 {
		logHeight = barY
		logY = 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, int32(logY), int32(screenW), int32(logHeight), logBgColor)
	}
	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := logY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		color := rl.LightGray
		if hasErrorMarker(line) {
			color = errorColor
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), color)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(barHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	rl.DrawText(prompt+c.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}

// hasErrorMarker reports whether a logged line is an error report (errors
// are logged with an "error: " marker after the timestamp).
func hasErrorMarker(line string) bool {
	return strings.Contains(line, "] error: ")
}
