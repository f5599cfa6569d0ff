package lighting

// Rig is the resolved set of light descriptors for a scene region (the room
// interior or the placed furniture). A rig is an immutable value: preset or
// bounds changes produce a brand-new rig rather than mutating one in place,
// so a rig can never be observed half-updated.
type Rig struct {
	Ambient     AmbientLight
	Hemisphere  *HemisphereLight // optional, room presets only
	Points      []PointLight     // ordered; room presets only
	Directional *DirectionalLight // furniture presets only
}

// AmbientLight is a scene-wide constant illumination term.
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
}

// HemisphereLight blends a sky color from above with a ground color from
// below. Position is the room center at ceiling height.
type HemisphereLight struct {
	SkyColor    [3]float32
	GroundColor [3]float32
	Intensity   float32
	Position    [3]float32
}

// PointLight is one positioned light with distance falloff.
type PointLight struct {
	Position        [3]float32
	Color           [3]float32
	Intensity       float32
	FalloffDistance float32
	FalloffExponent float32
	CastsShadow     bool
}

// DirectionalLight is a sun-style light. Position is a fixed world-space
// anchor the renderer aims at the origin. ShadowMapSize is a resolution hint
// for the renderer's shadow pass.
type DirectionalLight struct {
	Position      [3]float32
	Color         [3]float32
	Intensity     float32
	CastsShadow   bool
	ShadowMapSize int32
}

// Scaled returns a copy of the rig with every intensity (ambient, hemisphere,
// each light) multiplied by mult. Resolvers return base intensities; the
// runtime intensity knob is applied here, never baked into the preset tables.
// A nil rig stays nil.
func (r *Rig) Scaled(mult float32) *Rig {
	if r == nil {
		return nil
	}
	out := Rig{Ambient: r.Ambient}
	out.Ambient.Intensity *= mult
	if r.Hemisphere != nil {
		h := *r.Hemisphere
		h.Intensity *= mult
		out.Hemisphere = &h
	}
	if len(r.Points) > 0 {
		out.Points = make([]PointLight, len(r.Points))
		copy(out.Points, r.Points)
		for i := range out.Points {
			out.Points[i].Intensity *= mult
		}
	}
	if r.Directional != nil {
		d := *r.Directional
		d.Intensity *= mult
		out.Directional = &d
	}
	return &out
}
