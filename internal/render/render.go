// Package render is the rendering collaborator of the scene store: it draws
// the composed scene with raylib, instantiates the current lighting rigs as
// shader state, and feeds load-completion and gizmo-commit events back into
// the store. All scene truth lives in the store; this package only mirrors it.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-composer/internal/environment"
	"scene-composer/internal/logger"
	"scene-composer/internal/material"
	"scene-composer/internal/store"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// nudgeStep units per second for gizmo keyboard nudges; rotation uses
// nudgeRotStep radians per second.
const (
	nudgeStep    = 2.0
	nudgeRotStep = 1.5
	nudgeSclStep = 0.75
)

// Renderer owns the camera, the GPU model cache, and the lit shader. Update
// runs input (camera, picking, gizmo nudges); Draw renders between
// BeginMode3D and EndMode3D. Camera handling follows raylib's free camera.
type Renderer struct {
	store *store.Store
	log   *logger.Logger
	envs  *environment.Table

	Camera      rl.Camera3D
	GridVisible bool

	uniforms lightUniforms
	shaderOK bool

	models  map[string]*loadedModel
	queued  map[string]bool
	pending []pendingLoad

	adjuster       *material.Adjuster
	lastBrightness float32
}

// New returns a renderer with a perspective camera looking at the origin:
// position (10,10,10), target (0,0,0), up (0,1,0), fovy 45. GPU resources
// (shader, models) are created lazily on the first Draw, after the window
// and GL context exist.
func New(st *store.Store, log *logger.Logger, envs *environment.Table) *Renderer {
	r := &Renderer{
		store:          st,
		log:            log,
		envs:           envs,
		GridVisible:    true,
		models:         make(map[string]*loadedModel),
		queued:         make(map[string]bool),
		adjuster:       material.NewAdjuster(),
		lastBrightness: st.RoomBrightness(),
	}
	r.Camera.Position = rl.NewVector3(10, 10, 10)
	r.Camera.Target = rl.NewVector3(0, 0, 0)
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	r.Camera.Fovy = 45
	r.Camera.Projection = rl.CameraPerspective
	return r
}

// Update runs once per frame while the console is closed: free camera while
// the right mouse button is held, left click picks (empty space deselects),
// and the keyboard drives mode switches, deletion, and transform nudges.
func (r *Renderer) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		rl.UpdateCamera(&r.Camera, rl.CameraFree)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		r.pick()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyT):
		r.store.SetMode(store.ModeTranslate)
	case rl.IsKeyPressed(rl.KeyR):
		r.store.SetMode(store.ModeRotate)
	case rl.IsKeyPressed(rl.KeyS):
		r.store.SetMode(store.ModeScale)
	}
	if rl.IsKeyPressed(rl.KeyDelete) {
		if id, ok := r.store.Selected(); ok {
			r.store.RemoveItem(id)
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		r.cycleSelection()
	}
	r.nudgeSelected(rl.GetFrameTime())
}

// cycleSelection selects the next placed item after the current selection.
func (r *Renderer) cycleSelection() {
	items := r.store.Items()
	if len(items) == 0 {
		return
	}
	cur, _ := r.store.Selected()
	next := items[0].ID
	for i, it := range items {
		if it.ID == cur && i+1 < len(items) {
			next = items[i+1].ID
			break
		}
	}
	r.store.Select(next)
}

// pick casts a ray from the mouse and selects the nearest hit item's AABB;
// a miss clears the selection.
func (r *Renderer) pick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), r.Camera)
	bestID := ""
	bestDist := float32(0)
	for _, it := range r.store.Items() {
		box := itemBox(it)
		hit := rl.GetRayCollisionBox(ray, box)
		if !hit.Hit {
			continue
		}
		if bestID == "" || hit.Distance < bestDist {
			bestID = it.ID
			bestDist = hit.Distance
		}
	}
	if bestID == "" {
		r.store.ClearSelection()
		return
	}
	r.store.Select(bestID)
}

// itemBox returns a unit-cube AABB scaled by the item's scale at its
// position, used for picking and the selection outline.
func itemBox(it store.SceneItem) rl.BoundingBox {
	half := [3]float32{it.Scale[0] * 0.5, it.Scale[1] * 0.5, it.Scale[2] * 0.5}
	for i := range half {
		if half[i] == 0 {
			half[i] = 0.5
		}
	}
	return rl.NewBoundingBox(
		rl.NewVector3(it.Position[0]-half[0], it.Position[1]-half[1], it.Position[2]-half[2]),
		rl.NewVector3(it.Position[0]+half[0], it.Position[1]+half[1], it.Position[2]+half[2]),
	)
}

// nudgeSelected applies arrow-key / page-key nudges to the selected item in
// the active transform mode, committing each change through UpdateItem.
func (r *Renderer) nudgeSelected(dt float32) {
	id, ok := r.store.Selected()
	if !ok {
		return
	}
	var dx, dy, dz float32
	if rl.IsKeyDown(rl.KeyLeft) {
		dx -= 1
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dx += 1
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dz -= 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dz += 1
	}
	if rl.IsKeyDown(rl.KeyPageUp) {
		dy += 1
	}
	if rl.IsKeyDown(rl.KeyPageDown) {
		dy -= 1
	}
	if dx == 0 && dy == 0 && dz == 0 {
		return
	}
	it, ok := r.store.Item(id)
	if !ok {
		return
	}
	switch r.store.Mode() {
	case store.ModeRotate:
		rot := it.Rotation
		rot[0] += dz * nudgeRotStep * dt
		rot[1] += dx * nudgeRotStep * dt
		rot[2] += dy * nudgeRotStep * dt
		r.store.UpdateItem(id, store.TransformPatch{Rotation: &rot})
	case store.ModeScale:
		scl := it.Scale
		scl[0] += dx * nudgeSclStep * dt
		scl[1] += dy * nudgeSclStep * dt
		scl[2] += dz * nudgeSclStep * dt
		r.store.UpdateItem(id, store.TransformPatch{Scale: &scl})
	default:
		pos := it.Position
		pos[0] += dx * nudgeStep * dt
		pos[1] += dy * nudgeStep * dt
		pos[2] += dz * nudgeStep * dt
		r.store.UpdateItem(id, store.TransformPatch{Position: &pos})
	}
}

// Draw renders one frame: environment background, grid, every placed item
// under the current rigs, and the selection outline. Must be called between
// BeginDrawing and EndDrawing; handles its own 3D mode.
func (r *Renderer) Draw() {
	if !r.shaderOK {
		r.uniforms = newLightUniforms()
		r.shaderOK = true
		for _, lm := range r.models {
			r.applyShader(lm)
		}
	}
	r.syncModels()
	r.drainOneLoad()
	r.syncRoomBounds()

	if b := r.store.RoomBrightness(); b != r.lastBrightness {
		r.lastBrightness = b
		r.applyBrightness()
	}

	env := r.envs.Resolve(r.store.Environment())
	if rgb, err := environment.ParseColor(env.Background); err == nil {
		rl.ClearBackground(rl.NewColor(uint8(rgb[0]*255), uint8(rgb[1]*255), uint8(rgb[2]*255), 255))
	}

	r.uniforms.apply(r.store.RoomRig(), r.store.FurnitureRig())

	rl.BeginMode3D(r.Camera)
	if r.GridVisible {
		drawEditorGrid()
	}
	selected, _ := r.store.Selected()
	for _, it := range r.store.Items() {
		lm, ok := r.models[it.Asset]
		if !ok {
			// Load still in flight; the item exists in store state without
			// resolved geometry. Show its box so it can still be selected.
			rl.DrawBoundingBox(itemBox(it), rl.Gray)
			continue
		}
		drawItem(lm, it)
		if it.ID == selected {
			rl.DrawBoundingBox(itemBox(it), rl.Yellow)
		}
	}
	rl.EndMode3D()
}

// drawItem draws one placed item with its euler rotation and scale.
func drawItem(lm *loadedModel, it store.SceneItem) {
	lm.model.Transform = rl.MatrixRotateXYZ(rl.NewVector3(it.Rotation[0], it.Rotation[1], it.Rotation[2]))
	rl.DrawModelEx(
		lm.model,
		rl.NewVector3(it.Position[0], it.Position[1], it.Position[2]),
		rl.NewVector3(0, 1, 0), 0,
		rl.NewVector3(it.Scale[0], it.Scale[1], it.Scale[2]),
		rl.White,
	)
}

// drawEditorGrid draws a Unity-style grid on the XZ plane with major/minor
// lines and axis lines. Reuses start/end vectors to avoid per-frame
// allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
