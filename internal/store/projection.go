package store

import (
	"fmt"

	"github.com/jinzhu/copier"

	"scene-composer/internal/document"
)

// Document returns the full-save projection: the library with payload
// references, and items carrying their backing asset's url so a loader can
// rebind them. Pure read; the result shares no memory with store state.
func (s *Store) Document() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc document.Document
	mustDeepCopy(&doc.Library, &s.library)
	mustDeepCopy(&doc.Items, &s.items)
	if doc.Items == nil {
		doc.Items = []document.Item{}
	}

	urlByAsset := make(map[string]string, len(s.library))
	for _, a := range s.library {
		urlByAsset[a.Name] = a.URL
	}
	for i := range s.items {
		doc.Items[i].URL = urlByAsset[s.items[i].Asset]
	}

	doc.Environment = s.environment
	doc.RoomLightingPreset = s.roomPreset
	doc.FurnitureLightingPreset = s.furniturePreset
	doc.RoomLightIntensity = f32ptr(s.roomIntensity)
	doc.FurnitureLightIntensity = f32ptr(s.furnitureIntensity)
	doc.RoomMaterialBrightness = f32ptr(s.roomBrightness)
	return doc
}

// InfoDocument returns the lightweight export: transforms and knobs only,
// no library and no payload references on items.
func (s *Store) InfoDocument() document.Document {
	doc := s.Document()
	doc.Library = nil
	for i := range doc.Items {
		doc.Items[i].URL = ""
	}
	return doc
}

// LoadDocument atomically replaces library, items, environment, and every
// lighting knob from doc. Missing document fields take their documented
// defaults — load is a full replace, not a merge. Selection, room
// designation, and derived bounds are reset; in-flight asset loads are
// invalidated. The caller is responsible for rejecting malformed input
// before this point (the codec's parse boundary).
func (s *Store) LoadDocument(doc document.Document) {
	doc = doc.Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Invalidate every in-flight load before the replace. Generations are
	// bumped, never reset: a completion begun against the old library must be
	// discarded even when the new document reuses the same asset name.
	for _, a := range s.library {
		s.loadGen[a.Name]++
	}

	// Rebuild the library, deduplicating names first-wins: a hand-edited
	// document is the one boundary where unvalidated names enter the store,
	// and the name-uniqueness invariant must hold for the whole session.
	s.library = s.library[:0]
	seen := make(map[string]bool, len(doc.Library))
	for _, a := range doc.Library {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		s.library = append(s.library, LibraryAsset{Name: a.Name, URL: a.URL})
	}

	// Rebind each item to its library asset: match the saved payload url
	// first, the item name second. Unmatched items stay placed but orphaned.
	assetByURL := make(map[string]string, len(s.library))
	assetNames := make(map[string]bool, len(s.library))
	for _, a := range s.library {
		if a.URL != "" {
			assetByURL[a.URL] = a.Name
		}
		assetNames[a.Name] = true
	}
	s.items = make([]SceneItem, 0, len(doc.Items))
	for _, di := range doc.Items {
		it := SceneItem{
			ID:       di.ID,
			Name:     di.Name,
			Position: di.Position,
			Rotation: di.Rotation,
			Scale:    di.Scale,
		}
		if name, ok := assetByURL[di.URL]; ok {
			it.Asset = name
		} else if assetNames[di.Name] {
			it.Asset = di.Name
		}
		s.items = append(s.items, it)
	}

	s.selected = ""
	s.roomAsset = ""
	s.roomBounds = nil

	s.environment = doc.Environment
	s.roomPreset = doc.RoomLightingPreset
	s.furniturePreset = doc.FurnitureLightingPreset
	s.roomIntensity = *doc.RoomLightIntensity
	s.furnitureIntensity = *doc.FurnitureLightIntensity
	s.roomBrightness = *doc.RoomMaterialBrightness
	s.recomputeRigs()
}

func f32ptr(v float32) *float32 { return &v }

// mustDeepCopy deep-copies src into dst. The projection shapes are plain
// slices of exported structs, so a copier failure here means a programming
// error, never bad input; silently returning an empty projection would
// corrupt the next save.
func mustDeepCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("store: deep copy projection: %v", err))
	}
}
