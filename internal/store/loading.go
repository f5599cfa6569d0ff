package store

import (
	"scene-composer/internal/geom"
)

// Asset loading is asynchronous: the render collaborator begins a load,
// decodes the model off the critical path, then reports completion. Between
// BeginLoad and the completion call the corresponding item exists in store
// state without resolved geometry; readers tolerate that. Removing the asset
// (or replacing everything via LoadDocument) bumps the generation so the
// eventual completion is discarded — deleted state is never resurrected.

// BeginLoad marks the start of an asynchronous load for the named asset and
// returns the generation token to present on completion. ok is false when
// the asset is not (or no longer) in the library.
func (s *Store) BeginLoad(assetName string) (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.library {
		if a.Name == assetName {
			return s.loadGen[assetName], true
		}
	}
	return 0, false
}

// FinishLoad reports an asset load completion. It returns true when the
// result should be kept: the asset is still in the library and no removal
// happened since BeginLoad. A false return means the caller must discard
// whatever it loaded.
func (s *Store) FinishLoad(assetName string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishLoadLocked(assetName, gen)
}

func (s *Store) finishLoadLocked(assetName string, gen uint64) bool {
	if s.loadGen[assetName] != gen {
		return false
	}
	for _, a := range s.library {
		if a.Name == assetName {
			return true
		}
	}
	return false
}

// SetRoomAsset designates the library asset whose geometry defines the room.
// Bounds from any previously designated room are cleared until the new
// room's load completes.
func (s *Store) SetRoomAsset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomAsset == name {
		return
	}
	s.roomAsset = name
	s.roomBounds = nil
	s.recomputeRigs()
}

// RoomAsset returns the designated room asset name, if any.
func (s *Store) RoomAsset() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomAsset, s.roomAsset != ""
}

// FinishRoomLoad reports completion of the room asset's load together with
// its computed bounds. The bounds are applied — and the room rig recomputed,
// atomically with them — only when the load is still current and the asset
// is still the designated room. A degenerate (all-zero) bounds is accepted:
// an empty room is valid state.
func (s *Store) FinishRoomLoad(assetName string, gen uint64, b geom.RoomBounds) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finishLoadLocked(assetName, gen) || s.roomAsset != assetName {
		return false
	}
	bounds := b
	s.roomBounds = &bounds
	s.recomputeRigs()
	return true
}

// RoomBounds returns the current room bounds, if present.
func (s *Store) RoomBounds() (geom.RoomBounds, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomBounds == nil {
		return geom.RoomBounds{}, false
	}
	return *s.roomBounds, true
}

// ClearRoomBounds drops the derived bounds (room unloaded) and recomputes
// the room rig, which becomes nil until a new load completes.
func (s *Store) ClearRoomBounds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomBounds = nil
	s.recomputeRigs()
}
