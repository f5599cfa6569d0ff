// Package store is the single authority over mutable scene state: the asset
// library, placed items, selection, transform mode, environment, and the
// lighting knobs. Every mutation goes through one mutex (single-writer
// discipline) and derived lighting rigs are recomputed inside the same
// critical section, so no reader ever observes a rig computed from bounds or
// knobs that have since been superseded.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"scene-composer/internal/document"
	"scene-composer/internal/geom"
	"scene-composer/internal/lighting"
)

// TransformMode selects which gizmo operation applies to the selected item.
type TransformMode int

const (
	ModeTranslate TransformMode = iota
	ModeRotate
	ModeScale
)

// String returns the mode name as used in console commands.
func (m TransformMode) String() string {
	switch m {
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	default:
		return "translate"
	}
}

// ParseTransformMode maps a mode name to its TransformMode.
func ParseTransformMode(s string) (TransformMode, bool) {
	switch s {
	case "translate":
		return ModeTranslate, true
	case "rotate":
		return ModeRotate, true
	case "scale":
		return ModeScale, true
	}
	return ModeTranslate, false
}

// LibraryAsset is one reusable library entry. Names are unique keys, checked
// case-sensitively at insert. URL is an external reference or an embedded
// payload string.
type LibraryAsset struct {
	Name string
	URL  string
}

// SceneItem is one placed, transformable instance of a library asset.
type SceneItem struct {
	ID       string // opaque unique id
	Asset    string // backing library asset name
	Name     string
	Position [3]float32
	Rotation [3]float32 // euler radians
	Scale    [3]float32
}

// defaultItemTransform is applied when an asset is placed into the scene.
var defaultItemTransform = SceneItem{
	Position: [3]float32{0, 1, 0},
	Rotation: [3]float32{0, 0, 0},
	Scale:    [3]float32{1, 1, 1},
}

// TransformPatch is a partial transform update; nil fields keep the item's
// current value. Overlapping updates are last-write-wins.
type TransformPatch struct {
	Position *[3]float32
	Rotation *[3]float32
	Scale    *[3]float32
}

// Store holds all mutable scene state. Create with New.
type Store struct {
	mu sync.Mutex

	library []LibraryAsset
	items   []SceneItem

	selected string // selected item id, "" when nothing is selected
	mode     TransformMode

	environment        string
	roomPreset         lighting.RoomPreset
	furniturePreset    lighting.FurniturePreset
	roomIntensity      float32
	furnitureIntensity float32
	roomBrightness     float32

	roomAsset  string // library asset designated as the room, "" when none
	roomBounds *geom.RoomBounds

	// Derived rigs, recomputed on every mutation that can affect them.
	// Immutable once stored; readers get the current pointer/value.
	roomRig      *lighting.Rig
	furnitureRig lighting.Rig

	// loadGen invalidates in-flight asset loads: removing an asset bumps its
	// generation so a completion carrying a stale generation is discarded.
	loadGen map[string]uint64
}

// New returns a store with an empty scene and documented defaults: the
// warm-evening room preset, default furniture preset, unit intensities and
// brightness, and the studio environment.
func New() *Store {
	s := &Store{
		environment:        document.DefaultEnvironment,
		roomPreset:         lighting.DefaultRoomPreset,
		furniturePreset:    lighting.FurnitureDefault,
		roomIntensity:      document.DefaultIntensity,
		furnitureIntensity: document.DefaultIntensity,
		roomBrightness:     document.DefaultBrightness,
		loadGen:            make(map[string]uint64),
	}
	s.recomputeRigs()
	return s
}

// recomputeRigs rebuilds both derived rigs from current state. Called with
// the mutex held by every mutation that touches presets, bounds, or
// intensities. Full recompute, no caching: the rig can never desynchronize
// from the state that produced it.
func (s *Store) recomputeRigs() {
	s.roomRig = lighting.ResolveRoom(s.roomPreset, s.roomBounds).Scaled(s.roomIntensity)
	fr := lighting.ResolveFurniture(s.furniturePreset)
	s.furnitureRig = *fr.Scaled(s.furnitureIntensity)
}

// ── Library ──

// Assets returns a copy of the library in insertion order.
func (s *Store) Assets() []LibraryAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LibraryAsset, len(s.library))
	copy(out, s.library)
	return out
}

// Asset looks up a library entry by name.
func (s *Store) Asset(name string) (LibraryAsset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.library {
		if a.Name == name {
			return a, true
		}
	}
	return LibraryAsset{}, false
}

// AddAsset inserts a library entry. Duplicate names (case-sensitive) are
// rejected and the library is left unchanged; the UI layer is expected to
// pre-check and warn before calling.
func (s *Store) AddAsset(a LibraryAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.library {
		if existing.Name == a.Name {
			return fmt.Errorf("asset %q already in library", a.Name)
		}
	}
	s.library = append(s.library, a)
	return nil
}

// RemoveAsset deletes a library entry and cascades: every scene item
// referencing it is removed, selection is cleared if a removed item was
// selected, and if the asset was the room its bounds are cleared. In-flight
// loads for the asset are invalidated.
func (s *Store) RemoveAsset(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, a := range s.library {
		if a.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.library = append(s.library[:idx], s.library[idx+1:]...)
	s.loadGen[name]++

	kept := s.items[:0]
	for _, it := range s.items {
		if it.Asset == name {
			if s.selected == it.ID {
				s.selected = ""
			}
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept

	if s.roomAsset == name {
		s.roomAsset = ""
		s.roomBounds = nil
		s.recomputeRigs()
	}
	return true
}

// ── Scene items ──

// Items returns a copy of the placed items in insertion order.
func (s *Store) Items() []SceneItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SceneItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks up a placed item by id.
func (s *Store) Item(id string) (SceneItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return SceneItem{}, false
}

// AddItem places a new instance of the named library asset with the default
// transform (position (0,1,0), no rotation, unit scale) and returns it.
func (s *Store) AddItem(assetName string) (SceneItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, a := range s.library {
		if a.Name == assetName {
			found = true
			break
		}
	}
	if !found {
		return SceneItem{}, fmt.Errorf("asset %q not in library", assetName)
	}
	it := defaultItemTransform
	it.ID = uuid.NewString()
	it.Asset = assetName
	it.Name = assetName
	s.items = append(s.items, it)
	return it, nil
}

// UpdateItem merges a partial transform into the item (last-write-wins).
// Returns false for an unknown id.
func (s *Store) UpdateItem(id string, patch TransformPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if patch.Position != nil {
			s.items[i].Position = *patch.Position
		}
		if patch.Rotation != nil {
			s.items[i].Rotation = *patch.Rotation
		}
		if patch.Scale != nil {
			s.items[i].Scale = *patch.Scale
		}
		return true
	}
	return false
}

// RemoveItem deletes a placed item, clearing selection if it was selected.
func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		if s.selected == id {
			s.selected = ""
		}
		return true
	}
	return false
}

// ── Selection and mode ──

// Select makes the item with the given id the single selection. Returns
// false (selection unchanged) for an unknown id.
func (s *Store) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			s.selected = id
			return true
		}
	}
	return false
}

// ClearSelection deselects, e.g. on a click into empty space.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the selected item id, if any.
func (s *Store) Selected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != ""
}

// Mode returns the global transform mode.
func (s *Store) Mode() TransformMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode sets the global transform mode; it applies to whichever item is
// selected.
func (s *Store) SetMode(m TransformMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// ── Environment and lighting knobs ──

// Environment returns the current environment name.
func (s *Store) Environment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.environment
}

// SetEnvironment sets the environment name. Unknown names are accepted; the
// environment table falls back when resolving them.
func (s *Store) SetEnvironment(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.environment = name
}

// RoomPreset returns the current room lighting preset.
func (s *Store) RoomPreset() lighting.RoomPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomPreset
}

// SetRoomPreset sets the room lighting preset and recomputes the room rig.
func (s *Store) SetRoomPreset(p lighting.RoomPreset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomPreset = p
	s.recomputeRigs()
}

// FurniturePreset returns the current furniture lighting preset.
func (s *Store) FurniturePreset() lighting.FurniturePreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.furniturePreset
}

// SetFurniturePreset sets the furniture lighting preset and recomputes the
// furniture rig.
func (s *Store) SetFurniturePreset(p lighting.FurniturePreset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.furniturePreset = p
	s.recomputeRigs()
}

// RoomIntensity returns the room light intensity multiplier.
func (s *Store) RoomIntensity() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomIntensity
}

// SetRoomIntensity sets the room light intensity multiplier. Expected domain
// is [0,3] but out-of-range values are accepted and passed through.
func (s *Store) SetRoomIntensity(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomIntensity = v
	s.recomputeRigs()
}

// FurnitureIntensity returns the furniture light intensity multiplier.
func (s *Store) FurnitureIntensity() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.furnitureIntensity
}

// SetFurnitureIntensity sets the furniture light intensity multiplier.
func (s *Store) SetFurnitureIntensity(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.furnitureIntensity = v
	s.recomputeRigs()
}

// RoomBrightness returns the room material brightness multiplier.
func (s *Store) RoomBrightness() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomBrightness
}

// SetRoomBrightness sets the room material brightness multiplier. Expected
// domain is [0.5,3]; not enforced here.
func (s *Store) SetRoomBrightness(v float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomBrightness = v
}

// ── Derived lighting ──

// RoomRig returns the current room lighting rig with the intensity
// multiplier applied, or nil when the preset is off/unknown or no room
// bounds exist. The rig is immutable; treat it as read-only.
func (s *Store) RoomRig() *lighting.Rig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomRig
}

// FurnitureRig returns the current furniture lighting rig with the intensity
// multiplier applied. Always present. Treat it as read-only.
func (s *Store) FurnitureRig() lighting.Rig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.furnitureRig
}
