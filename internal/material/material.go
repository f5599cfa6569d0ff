// Package material rescales room materials by the user's brightness knob.
// Adjustment always recomputes from a captured baseline, so applying the same
// brightness twice is a no-op and switching between values never drifts.
package material

import (
	"github.com/chewxy/math32"
)

// Material is the mutable surface description of one mesh-bearing node of the
// room model. The renderer mirrors these values into its shader uniforms.
type Material struct {
	Name              string
	Color             [3]float32 // base color, channels in [0,1]
	EmissiveColor     [3]float32
	EmissiveIntensity float32
}

// emissiveGlowFactor converts brightness above 1 into added emissive
// intensity, so over-brightened rooms start to glow instead of clipping.
const emissiveGlowFactor = 0.5

// baseline is the material state captured on first encounter. Immutable.
type baseline struct {
	color             [3]float32
	emissiveColor     [3]float32
	emissiveIntensity float32
}

// Adjuster applies the room brightness multiplier to materials. Baselines are
// keyed by material identity and captured at most once, never overwritten on
// later brightness changes; otherwise each change would compound on the
// previous one instead of replacing it.
type Adjuster struct {
	baselines map[*Material]baseline
}

// NewAdjuster returns an adjuster with no captured baselines.
func NewAdjuster() *Adjuster {
	return &Adjuster{baselines: make(map[*Material]baseline)}
}

// Apply sets m to baseline scaled by brightness. On the first call for a
// given material the current values are captured as its baseline. Color
// channels hard-clamp at 1; emissive intensity gains max(brightness-1, 0)*0.5
// over baseline while emissive color is restored to baseline.
func (a *Adjuster) Apply(m *Material, brightness float32) {
	if m == nil {
		return
	}
	base, ok := a.baselines[m]
	if !ok {
		base = baseline{
			color:             m.Color,
			emissiveColor:     m.EmissiveColor,
			emissiveIntensity: m.EmissiveIntensity,
		}
		a.baselines[m] = base
	}
	for i := range m.Color {
		m.Color[i] = math32.Min(base.color[i]*brightness, 1)
	}
	m.EmissiveColor = base.emissiveColor
	m.EmissiveIntensity = base.emissiveIntensity + math32.Max(brightness-1, 0)*emissiveGlowFactor
}

// ApplyAll adjusts every material in ms by the same brightness.
func (a *Adjuster) ApplyAll(ms []*Material, brightness float32) {
	for _, m := range ms {
		a.Apply(m, brightness)
	}
}

// Forget drops the captured baseline for m, e.g. when the room model that
// owned it is unloaded. The next Apply captures a fresh baseline.
func (a *Adjuster) Forget(m *Material) {
	delete(a.baselines, m)
}

// Reset drops every captured baseline. Used when the room model is replaced:
// the new model's materials are unrelated to the old baselines.
func (a *Adjuster) Reset() {
	a.baselines = make(map[*Material]baseline)
}
