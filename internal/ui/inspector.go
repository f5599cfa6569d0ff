// Package ui holds the in-window inspector panel. It reads from the scene
// store every frame and draws with raylib; it never mutates scene state.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-composer/internal/store"
)

const (
	panelWidth  = 300
	panelMargin = 12
	rowHeight   = 24
	textSize    = 18
	textPad     = 10
)

var (
	panelColor  = rl.NewColor(20, 20, 26, 210)
	borderColor = rl.NewColor(90, 90, 110, 255)
	titleColor  = rl.NewColor(240, 240, 240, 255)
	labelColor  = rl.NewColor(200, 200, 205, 255)
	dimColor    = rl.NewColor(150, 150, 155, 255)
)

// Inspector is a right-side panel showing the selected item's transform and
// the scene's lighting knobs. It is visible whenever an item is selected.
type Inspector struct {
	store *store.Store
	rows  []row
}

type row struct {
	text  string
	color rl.Color
}

// NewInspector returns an inspector bound to st.
func NewInspector(st *store.Store) *Inspector {
	return &Inspector{store: st}
}

// Draw renders the panel if an item is selected. Call between BeginDrawing
// and EndDrawing, after the 3D scene so the panel sits on top.
func (in *Inspector) Draw() {
	id, ok := in.store.Selected()
	if !ok {
		return
	}
	it, ok := in.store.Item(id)
	if !ok {
		return
	}

	in.rows = in.rows[:0]
	in.addRow(it.Name, titleColor)
	in.addRow("id "+shortID(it.ID), dimColor)
	in.addRow(fmt.Sprintf("pos   %.2f  %.2f  %.2f", it.Position[0], it.Position[1], it.Position[2]), labelColor)
	in.addRow(fmt.Sprintf("rot   %.2f  %.2f  %.2f", it.Rotation[0], it.Rotation[1], it.Rotation[2]), labelColor)
	in.addRow(fmt.Sprintf("scale %.2f  %.2f  %.2f", it.Scale[0], it.Scale[1], it.Scale[2]), labelColor)
	in.addRow("mode  "+in.store.Mode().String(), labelColor)
	in.addRow("", labelColor)
	in.addRow("room      "+string(in.store.RoomPreset()), dimColor)
	in.addRow("furniture "+string(in.store.FurniturePreset()), dimColor)
	in.addRow(fmt.Sprintf("intensity %.2f / %.2f", in.store.RoomIntensity(), in.store.FurnitureIntensity()), dimColor)
	in.addRow(fmt.Sprintf("brightness %.2f", in.store.RoomBrightness()), dimColor)
	in.addRow("env "+in.store.Environment(), dimColor)

	x := int32(rl.GetScreenWidth()) - panelWidth - panelMargin
	y := int32(panelMargin)
	h := int32(len(in.rows))*rowHeight + 2*textPad

	rl.DrawRectangle(x, y, panelWidth, h, panelColor)
	rl.DrawRectangleLines(x, y, panelWidth, h, borderColor)
	for i, r := range in.rows {
		if r.text == "" {
			continue
		}
		rl.DrawText(r.text, x+textPad, y+textPad+int32(i)*rowHeight, textSize, r.color)
	}
}

func (in *Inspector) addRow(text string, c rl.Color) {
	in.rows = append(in.rows, row{text: text, color: c})
}

// shortID truncates uuid-length ids for display; ids from hand-edited
// documents can be arbitrarily short.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
