package lighting

import (
	"github.com/chewxy/math32"

	"scene-composer/internal/geom"
)

// RoomPreset names a room lighting configuration. Presets travel through
// saved documents as plain strings, so the type is a string with a fixed set
// of known values; anything outside the table resolves like RoomOff.
type RoomPreset string

const (
	RoomOff         RoomPreset = "off"
	RoomWarmEvening RoomPreset = "warm-evening"
	RoomBrightDay   RoomPreset = "bright-day"
	RoomCoolNight   RoomPreset = "cool-night"
	RoomIntimate    RoomPreset = "intimate"
	RoomGallery     RoomPreset = "gallery"
)

// DefaultRoomPreset is used when a loaded document carries no room preset.
const DefaultRoomPreset = RoomWarmEvening

const (
	// ceilingFactor places lights below the physical ceiling, pointing down.
	ceilingFactor = 0.9
	// cornerBlend interpolates from room center toward each horizontal extreme.
	cornerBlend = 0.8
	// falloffFactor scales the larger horizontal extent into the shared falloff distance.
	falloffFactor = 0.8
	// falloffExponent is fixed for every room point light.
	falloffExponent = 2
	// intimateDrop lowers intimate-preset lights below the usual ceiling height.
	intimateDrop = 0.5
)

// anchor selects where a room light sits in the horizontal plane.
type anchor int

const (
	cornerMinXMinZ anchor = iota
	cornerMinXMaxZ
	cornerMaxXMinZ
	cornerMaxXMaxZ
	center
)

type roomLight struct {
	at           anchor
	color        [3]float32
	intensity    float32
	falloffScale float32 // 0 means 1 (the shared distance as-is)
}

type hemisphereDef struct {
	sky       [3]float32
	ground    [3]float32
	intensity float32
}

type roomPresetDef struct {
	ambient    AmbientLight
	hemisphere *hemisphereDef
	lowered    bool // place lights intimateDrop below ceiling height
	lights     []roomLight
}

// roomPresets is the exhaustive preset table. Every entry carries base
// intensities; the runtime multiplier is applied by Rig.Scaled.
var roomPresets = map[RoomPreset]roomPresetDef{
	RoomWarmEvening: {
		ambient:    AmbientLight{Color: [3]float32{1.0, 0.85, 0.7}, Intensity: 0.4},
		hemisphere: &hemisphereDef{sky: [3]float32{1.0, 0.9, 0.8}, ground: [3]float32{0.4, 0.3, 0.25}, intensity: 0.3},
		lights: []roomLight{
			{at: cornerMinXMinZ, color: [3]float32{1.0, 0.8, 0.6}, intensity: 0.8},
			{at: cornerMinXMaxZ, color: [3]float32{1.0, 0.8, 0.6}, intensity: 0.8},
			{at: cornerMaxXMinZ, color: [3]float32{1.0, 0.8, 0.6}, intensity: 0.8},
			{at: cornerMaxXMaxZ, color: [3]float32{1.0, 0.8, 0.6}, intensity: 0.8},
			{at: center, color: [3]float32{1.0, 0.85, 0.65}, intensity: 1.0, falloffScale: 1.2},
		},
	},
	RoomBrightDay: {
		ambient:    AmbientLight{Color: [3]float32{1, 1, 1}, Intensity: 0.7},
		hemisphere: &hemisphereDef{sky: [3]float32{0.8, 0.9, 1.0}, ground: [3]float32{0.5, 0.5, 0.45}, intensity: 0.5},
		lights: []roomLight{
			{at: cornerMinXMinZ, color: [3]float32{1.0, 0.98, 0.95}, intensity: 0.9},
			{at: cornerMinXMaxZ, color: [3]float32{1.0, 0.98, 0.95}, intensity: 0.9},
			{at: cornerMaxXMinZ, color: [3]float32{1.0, 0.98, 0.95}, intensity: 0.9},
			{at: cornerMaxXMaxZ, color: [3]float32{1.0, 0.98, 0.95}, intensity: 0.9},
			{at: center, color: [3]float32{1, 1, 1}, intensity: 1.1, falloffScale: 1.2},
		},
	},
	RoomCoolNight: {
		ambient:    AmbientLight{Color: [3]float32{0.6, 0.7, 1.0}, Intensity: 0.25},
		hemisphere: &hemisphereDef{sky: [3]float32{0.5, 0.6, 0.9}, ground: [3]float32{0.1, 0.1, 0.2}, intensity: 0.2},
		lights: []roomLight{
			{at: cornerMinXMinZ, color: [3]float32{0.7, 0.8, 1.0}, intensity: 0.6},
			{at: cornerMaxXMaxZ, color: [3]float32{0.7, 0.8, 1.0}, intensity: 0.6},
			{at: center, color: [3]float32{0.75, 0.8, 1.0}, intensity: 0.7, falloffScale: 1.2},
		},
	},
	RoomIntimate: {
		ambient: AmbientLight{Color: [3]float32{0.9, 0.7, 0.5}, Intensity: 0.2},
		lowered: true,
		lights: []roomLight{
			{at: cornerMinXMaxZ, color: [3]float32{1.0, 0.7, 0.45}, intensity: 0.7, falloffScale: 0.6},
			{at: cornerMaxXMinZ, color: [3]float32{1.0, 0.7, 0.45}, intensity: 0.7, falloffScale: 0.6},
			{at: center, color: [3]float32{1.0, 0.75, 0.5}, intensity: 0.9, falloffScale: 0.6},
		},
	},
	RoomGallery: {
		ambient: AmbientLight{Color: [3]float32{1, 1, 1}, Intensity: 0.5},
		lights: []roomLight{
			{at: cornerMinXMinZ, color: [3]float32{1.0, 0.99, 0.97}, intensity: 0.85, falloffScale: 0.7},
			{at: cornerMinXMaxZ, color: [3]float32{1.0, 0.99, 0.97}, intensity: 0.85, falloffScale: 0.7},
			{at: cornerMaxXMinZ, color: [3]float32{1.0, 0.99, 0.97}, intensity: 0.85, falloffScale: 0.7},
			{at: cornerMaxXMaxZ, color: [3]float32{1.0, 0.99, 0.97}, intensity: 0.85, falloffScale: 0.7},
			{at: center, color: [3]float32{1, 1, 1}, intensity: 1.0, falloffScale: 0.7},
		},
	},
}

// RoomPresets returns the known non-off presets in a stable order for UI lists.
func RoomPresets() []RoomPreset {
	return []RoomPreset{RoomWarmEvening, RoomBrightDay, RoomCoolNight, RoomIntimate, RoomGallery}
}

// Known reports whether p is in the preset table or is the explicit off value.
func (p RoomPreset) Known() bool {
	if p == RoomOff {
		return true
	}
	_, ok := roomPresets[p]
	return ok
}

// anchorPoint returns the horizontal position for a light anchor. Corner
// anchors blend from the center toward the paired X/Z extremes.
func anchorPoint(at anchor, b *geom.RoomBounds) (x, z float32) {
	blend := func(extreme, c float32) float32 { return c + (extreme-c)*cornerBlend }
	switch at {
	case cornerMinXMinZ:
		return blend(b.MinX, b.CenterX), blend(b.MinZ, b.CenterZ)
	case cornerMinXMaxZ:
		return blend(b.MinX, b.CenterX), blend(b.MaxZ, b.CenterZ)
	case cornerMaxXMinZ:
		return blend(b.MaxX, b.CenterX), blend(b.MinZ, b.CenterZ)
	case cornerMaxXMaxZ:
		return blend(b.MaxX, b.CenterX), blend(b.MaxZ, b.CenterZ)
	default:
		return b.CenterX, b.CenterZ
	}
}

// ResolveRoom derives the room lighting rig for a preset and the current room
// bounds. It is pure and total: RoomOff, an unknown preset, or absent bounds
// all yield nil (room lighting disabled), never an error. Returned intensities
// are base values; apply the runtime multiplier with Rig.Scaled.
func ResolveRoom(p RoomPreset, b *geom.RoomBounds) *Rig {
	def, ok := roomPresets[p]
	if !ok || b == nil {
		return nil
	}

	ceilingY := b.MaxY * ceilingFactor
	lightY := ceilingY
	if def.lowered {
		lightY -= intimateDrop
	}
	lightDistance := math32.Max(b.Width(), b.Depth()) * falloffFactor

	rig := &Rig{Ambient: def.ambient}
	if def.hemisphere != nil {
		rig.Hemisphere = &HemisphereLight{
			SkyColor:    def.hemisphere.sky,
			GroundColor: def.hemisphere.ground,
			Intensity:   def.hemisphere.intensity,
			Position:    [3]float32{b.CenterX, ceilingY, b.CenterZ},
		}
	}
	rig.Points = make([]PointLight, 0, len(def.lights))
	for _, l := range def.lights {
		x, z := anchorPoint(l.at, b)
		scale := l.falloffScale
		if scale == 0 {
			scale = 1
		}
		rig.Points = append(rig.Points, PointLight{
			Position:        [3]float32{x, lightY, z},
			Color:           l.color,
			Intensity:       l.intensity,
			FalloffDistance: lightDistance * scale,
			FalloffExponent: falloffExponent,
			CastsShadow:     true,
		})
	}
	return rig
}
