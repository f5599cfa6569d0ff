package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMaterial() *Material {
	return &Material{
		Name:              "wall",
		Color:             [3]float32{0.5, 0.4, 0.3},
		EmissiveColor:     [3]float32{0.1, 0.1, 0.1},
		EmissiveIntensity: 0.2,
	}
}

func TestApplyScalesFromBaseline(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()
	a.Apply(m, 1.5)
	assert.InDelta(t, 0.75, m.Color[0], 1e-5)
	assert.InDelta(t, 0.6, m.Color[1], 1e-5)
	assert.InDelta(t, 0.45, m.Color[2], 1e-5)
}

func TestApplyIsIdempotent(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()
	a.Apply(m, 1.5)
	after := *m
	a.Apply(m, 1.5)
	assert.Equal(t, after, *m, "same brightness twice must not compound")
}

func TestApplyDoesNotDriftAcrossChanges(t *testing.T) {
	a := NewAdjuster()
	stepped := newTestMaterial()
	a.Apply(stepped, 1.5)
	a.Apply(stepped, 2.0)

	direct := newTestMaterial()
	NewAdjuster().Apply(direct, 2.0)
	assert.Equal(t, *direct, *stepped, "1.5 then 2.0 must equal a direct 2.0")
}

func TestApplyClampsChannelsAtOne(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()
	a.Apply(m, 3)
	assert.Equal(t, float32(1), m.Color[0])
	assert.Equal(t, float32(1), m.Color[1])
	assert.InDelta(t, 0.9, m.Color[2], 1e-5)
}

func TestApplyEmissiveGlow(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()

	a.Apply(m, 0.8)
	assert.InDelta(t, 0.2, m.EmissiveIntensity, 1e-5, "dimming adds no glow")

	a.Apply(m, 2.0)
	assert.InDelta(t, 0.7, m.EmissiveIntensity, 1e-5)
	assert.Equal(t, [3]float32{0.1, 0.1, 0.1}, m.EmissiveColor, "emissive color stays at baseline")
}

func TestResetDropsBaselines(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()
	a.Apply(m, 2)

	// After Reset the current (brightened) values become the new baseline.
	a.Reset()
	a.Apply(m, 1)
	assert.Equal(t, float32(1), m.Color[0])
}

func TestForget(t *testing.T) {
	a := NewAdjuster()
	m := newTestMaterial()
	a.Apply(m, 2)
	a.Forget(m)
	a.Apply(m, 1)
	assert.Equal(t, float32(1), m.Color[0], "baseline recaptured from brightened state")
}

func TestApplyAllAndNil(t *testing.T) {
	a := NewAdjuster()
	m1, m2 := newTestMaterial(), newTestMaterial()
	a.ApplyAll([]*Material{m1, m2}, 1.5)
	assert.InDelta(t, 0.75, m1.Color[0], 1e-5)
	assert.InDelta(t, 0.75, m2.Color[0], 1e-5)
	a.Apply(nil, 2) // must not panic
}
