// Package document defines the portable scene document and its JSON codec.
// A document is the persisted projection of the store: the asset library,
// placed items, environment, and every lighting knob. Two shapes exist: the
// full save (library with payloads, items carrying their asset reference)
// and the info export (transform data only, no payloads).
package document

import (
	"scene-composer/internal/lighting"
)

// Defaults applied by Normalized when a loaded document omits a field.
// Load is a full replace: missing fields take these values, never the
// store's prior values.
const (
	DefaultEnvironment = "studio"
	DefaultIntensity   = float32(1.0)
	DefaultBrightness  = float32(1.0)
)

// Asset is one library entry. URL is either an external reference or an
// embedded payload string (data: URI); the codec does not distinguish.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Item is one placed scene item. URL carries the backing asset's payload
// reference in full saves and is omitted from info exports.
type Item struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	URL      string     `json:"url,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"` // euler radians
	Scale    [3]float32 `json:"scale"`
}

// Document is the persisted scene shape. Optional numeric knobs are pointers
// so that an absent field is distinguishable from an explicit zero.
type Document struct {
	Library                 []Asset                  `json:"library,omitempty"`
	Items                   []Item                   `json:"items"`
	Environment             string                   `json:"environment,omitempty"`
	RoomLightingPreset      lighting.RoomPreset      `json:"roomLightingPreset,omitempty"`
	FurnitureLightingPreset lighting.FurniturePreset `json:"furnitureLightingPreset,omitempty"`
	RoomLightIntensity      *float32                 `json:"roomLightIntensity,omitempty"`
	FurnitureLightIntensity *float32                 `json:"furnitureLightIntensity,omitempty"`
	RoomMaterialBrightness  *float32                 `json:"roomMaterialBrightness,omitempty"`
}

// Normalized returns a copy with every omitted field replaced by its
// documented default. Preset strings outside the known tables are kept
// as-is; the resolvers handle them with their own fallbacks.
func (d Document) Normalized() Document {
	if d.Items == nil {
		d.Items = []Item{}
	}
	if d.Environment == "" {
		d.Environment = DefaultEnvironment
	}
	if d.RoomLightingPreset == "" {
		d.RoomLightingPreset = lighting.DefaultRoomPreset
	}
	if d.FurnitureLightingPreset == "" {
		d.FurnitureLightingPreset = lighting.FurnitureDefault
	}
	if d.RoomLightIntensity == nil {
		d.RoomLightIntensity = ptr(DefaultIntensity)
	}
	if d.FurnitureLightIntensity == nil {
		d.FurnitureLightIntensity = ptr(DefaultIntensity)
	}
	if d.RoomMaterialBrightness == nil {
		d.RoomMaterialBrightness = ptr(DefaultBrightness)
	}
	return d
}

func ptr(v float32) *float32 { return &v }
