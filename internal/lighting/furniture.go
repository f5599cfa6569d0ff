package lighting

// FurniturePreset names a furniture lighting configuration. Unlike room
// presets, furniture lighting always exists: unknown values resolve to the
// FurnitureDefault entry instead of switching lighting off.
type FurniturePreset string

const (
	FurnitureDefault  FurniturePreset = "default"
	FurnitureSoft     FurniturePreset = "soft"
	FurnitureDramatic FurniturePreset = "dramatic"
	FurnitureCool     FurniturePreset = "cool"
)

// directionalAnchor is the fixed world-space position for the furniture key
// light. The dramatic preset pulls the light higher and further out for
// longer shadows.
var (
	directionalAnchor         = [3]float32{5, 10, 7}
	directionalAnchorDramatic = [3]float32{8, 15, 10}
)

// defaultShadowMapSize is the shadow-resolution hint for furniture key lights.
const defaultShadowMapSize = 2048

var furniturePresets = map[FurniturePreset]Rig{
	FurnitureDefault: {
		Ambient: AmbientLight{Color: [3]float32{1, 1, 1}, Intensity: 0.5},
		Directional: &DirectionalLight{
			Position:      directionalAnchor,
			Color:         [3]float32{1.0, 0.98, 0.95},
			Intensity:     0.9,
			CastsShadow:   true,
			ShadowMapSize: defaultShadowMapSize,
		},
	},
	FurnitureSoft: {
		Ambient: AmbientLight{Color: [3]float32{1, 1, 1}, Intensity: 0.65},
		Directional: &DirectionalLight{
			Position:      directionalAnchor,
			Color:         [3]float32{1.0, 0.97, 0.92},
			Intensity:     0.55,
			CastsShadow:   false,
			ShadowMapSize: defaultShadowMapSize,
		},
	},
	FurnitureDramatic: {
		Ambient: AmbientLight{Color: [3]float32{0.9, 0.9, 1.0}, Intensity: 0.25},
		Directional: &DirectionalLight{
			Position:      directionalAnchorDramatic,
			Color:         [3]float32{1.0, 0.95, 0.85},
			Intensity:     1.3,
			CastsShadow:   true,
			ShadowMapSize: 4096,
		},
	},
	FurnitureCool: {
		Ambient: AmbientLight{Color: [3]float32{0.85, 0.9, 1.0}, Intensity: 0.5},
		Directional: &DirectionalLight{
			Position:      directionalAnchor,
			Color:         [3]float32{0.9, 0.95, 1.0},
			Intensity:     0.85,
			CastsShadow:   true,
			ShadowMapSize: defaultShadowMapSize,
		},
	},
}

// FurniturePresets returns the known presets in a stable order for UI lists.
func FurniturePresets() []FurniturePreset {
	return []FurniturePreset{FurnitureDefault, FurnitureSoft, FurnitureDramatic, FurnitureCool}
}

// Known reports whether p is a table entry.
func (p FurniturePreset) Known() bool {
	_, ok := furniturePresets[p]
	return ok
}

// ResolveFurniture derives the furniture lighting rig for a preset. Total:
// an unknown preset returns the same values as FurnitureDefault, so furniture
// lighting is never absent. The returned rig shares no memory with the table.
func ResolveFurniture(p FurniturePreset) Rig {
	def, ok := furniturePresets[p]
	if !ok {
		def = furniturePresets[FurnitureDefault]
	}
	d := *def.Directional
	def.Directional = &d
	return def
}
