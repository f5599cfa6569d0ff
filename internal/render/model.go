package render

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-composer/internal/assets"
	"scene-composer/internal/geom"
	"scene-composer/internal/material"
)

// modelCacheDir is where embedded and fetched payloads are materialized so
// raylib's file-based loaders can read them.
const modelCacheDir = "cache/models"

// pendingLoad is a model load that has been requested but not yet run. GPU
// resources must be created on the render thread after the window exists, so
// loads are queued and drained one per frame from Draw (the same deferral
// the skybox-style assets use).
type pendingLoad struct {
	asset string
	url   string
	gen   uint64
	room  bool
}

// loadedModel pairs a GPU model with its materials mirrored for the
// brightness adjuster.
type loadedModel struct {
	model     rl.Model
	materials []*material.Material
}

// requestLoad queues a model load for the named asset. The store hands out
// the generation token; a stale token at completion time means the asset was
// removed mid-flight and the loaded model is discarded immediately.
func (r *Renderer) requestLoad(assetName, url string, room bool) {
	gen, ok := r.store.BeginLoad(assetName)
	if !ok {
		return
	}
	r.pending = append(r.pending, pendingLoad{asset: assetName, url: url, gen: gen, room: room})
}

// drainOneLoad runs at most one queued load per frame to keep frame times
// steady while a large library is materializing.
func (r *Renderer) drainOneLoad() {
	if len(r.pending) == 0 {
		return
	}
	p := r.pending[0]
	r.pending = r.pending[1:]

	// raylib loads from files only: embedded payloads are materialized and
	// external references fetched into the cache first.
	path := p.url
	switch {
	case assets.IsEmbedded(p.url):
		var err error
		path, err = assets.Materialize(p.url, p.asset, modelCacheDir)
		if err != nil {
			r.log.Logf("load %s: %v", p.asset, err)
			return
		}
	case strings.HasPrefix(p.url, "http://") || strings.HasPrefix(p.url, "https://"):
		var err error
		path, err = assets.Fetch(p.url, modelCacheDir)
		if err != nil {
			r.log.Logf("load %s: %v", p.asset, err)
			return
		}
	}
	model := rl.LoadModel(path)

	if !r.store.FinishLoad(p.asset, p.gen) {
		// Removed while loading; never resurrect deleted state.
		rl.UnloadModel(model)
		return
	}

	lm := &loadedModel{model: model}
	mats := model.GetMaterials()
	for i := range mats {
		m := &material.Material{Name: p.asset}
		if albedo := mats[i].GetMap(rl.MapAlbedo); albedo != nil {
			m.Color = [3]float32{
				float32(albedo.Color.R) / 255,
				float32(albedo.Color.G) / 255,
				float32(albedo.Color.B) / 255,
			}
		}
		lm.materials = append(lm.materials, m)
	}
	if old, ok := r.models[p.asset]; ok {
		rl.UnloadModel(old.model)
	}
	r.models[p.asset] = lm
	r.applyShader(lm)

	if p.room {
		b := boundsFromModel(model)
		if r.store.FinishRoomLoad(p.asset, p.gen, b) {
			r.adjuster.Reset()
			r.applyBrightness()
			r.log.Logf("room %s loaded, bounds %.1fx%.1fx%.1f", p.asset, b.Width(), b.Height(), b.Depth())
		}
	} else {
		r.log.Logf("asset %s loaded", p.asset)
	}
}

// applyShader points every material of the model at the rig-lit shader.
func (r *Renderer) applyShader(lm *loadedModel) {
	mats := lm.model.GetMaterials()
	for i := range mats {
		mats[i].Shader = r.uniforms.shader
	}
}

// boundsFromModel unions the model's mesh bounding boxes into RoomBounds.
// A model with no renderable geometry yields the degenerate zero bounds.
func boundsFromModel(model rl.Model) geom.RoomBounds {
	if model.MeshCount == 0 {
		return geom.RoomBounds{}
	}
	box := rl.GetModelBoundingBox(model)
	return geom.FromMinMax(
		[3]float32{box.Min.X, box.Min.Y, box.Min.Z},
		[3]float32{box.Max.X, box.Max.Y, box.Max.Z},
	)
}

// applyBrightness reruns the brightness adjuster over the room model's
// materials and mirrors the result into the GPU material colors.
func (r *Renderer) applyBrightness() {
	roomAsset, ok := r.store.RoomAsset()
	if !ok {
		return
	}
	lm, ok := r.models[roomAsset]
	if !ok {
		return
	}
	brightness := r.store.RoomBrightness()
	r.adjuster.ApplyAll(lm.materials, brightness)
	mats := lm.model.GetMaterials()
	for i, m := range lm.materials {
		if i >= len(mats) {
			break
		}
		if albedo := mats[i].GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rl.NewColor(
				uint8(m.Color[0]*255),
				uint8(m.Color[1]*255),
				uint8(m.Color[2]*255),
				albedo.Color.A,
			)
		}
	}
}

// syncRoomBounds derives bounds for a room asset whose model is already
// resident, so re-designating the room does not require a reload. Bounds for
// a model still in flight arrive through drainOneLoad instead.
func (r *Renderer) syncRoomBounds() {
	roomAsset, ok := r.store.RoomAsset()
	if !ok {
		return
	}
	if _, ok := r.store.RoomBounds(); ok {
		return
	}
	lm, ok := r.models[roomAsset]
	if !ok {
		return
	}
	gen, ok := r.store.BeginLoad(roomAsset)
	if !ok {
		return
	}
	if r.store.FinishRoomLoad(roomAsset, gen, boundsFromModel(lm.model)) {
		r.adjuster.Reset()
		r.applyBrightness()
	}
}

// removeModel unloads the GPU model for an asset that left the library.
func (r *Renderer) removeModel(assetName string) {
	if lm, ok := r.models[assetName]; ok {
		rl.UnloadModel(lm.model)
		delete(r.models, assetName)
	}
}

// syncModels requests loads for library assets without a model yet and drops
// models whose assets are gone. Called once per frame.
func (r *Renderer) syncModels() {
	roomAsset, _ := r.store.RoomAsset()
	inLibrary := make(map[string]bool)
	for _, a := range r.store.Assets() {
		inLibrary[a.Name] = true
		if _, ok := r.models[a.Name]; ok {
			continue
		}
		if r.queued[a.Name] {
			continue
		}
		r.queued[a.Name] = true
		r.requestLoad(a.Name, a.URL, a.Name == roomAsset)
	}
	for name := range r.models {
		if !inLibrary[name] {
			r.removeModel(name)
			delete(r.queued, name)
		}
	}
}
