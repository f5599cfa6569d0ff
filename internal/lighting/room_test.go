package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-composer/internal/geom"
)

func testBounds() geom.RoomBounds {
	return geom.FromMinMax([3]float32{-5, 0, -5}, [3]float32{5, 4, 5})
}

func TestResolveRoomDisabledCases(t *testing.T) {
	b := testBounds()
	assert.Nil(t, ResolveRoom(RoomOff, &b))
	assert.Nil(t, ResolveRoom(RoomPreset("nonsense"), &b))
	assert.Nil(t, ResolveRoom(RoomWarmEvening, nil))
}

func TestResolveRoomWarmEveningGeometry(t *testing.T) {
	b := testBounds()
	rig := ResolveRoom(RoomWarmEvening, &b)
	require.NotNil(t, rig)
	require.Len(t, rig.Points, 5)

	// Lights sit at 90% of the ceiling height.
	for _, p := range rig.Points {
		assert.InDelta(t, 3.6, p.Position[1], 1e-5)
		assert.Equal(t, float32(2), p.FalloffExponent)
		assert.True(t, p.CastsShadow)
	}

	// Corners blend 80% of the way from center to the extremes.
	corner := rig.Points[3] // maxX/maxZ
	assert.InDelta(t, 4.0, corner.Position[0], 1e-5)
	assert.InDelta(t, 4.0, corner.Position[2], 1e-5)
	assert.InDelta(t, 8.0, corner.FalloffDistance, 1e-5)

	// The center light sits over the room center with a wider falloff.
	centerLight := rig.Points[4]
	assert.InDelta(t, 0.0, centerLight.Position[0], 1e-5)
	assert.InDelta(t, 0.0, centerLight.Position[2], 1e-5)
	assert.InDelta(t, 9.6, centerLight.FalloffDistance, 1e-5)
	assert.InDelta(t, 1.0, centerLight.Intensity, 1e-5)

	require.NotNil(t, rig.Hemisphere)
	assert.InDelta(t, 3.6, rig.Hemisphere.Position[1], 1e-5)
	assert.InDelta(t, 0.4, rig.Ambient.Intensity, 1e-5)
}

func TestResolveRoomLightsStayInsideBounds(t *testing.T) {
	b := geom.FromMinMax([3]float32{-3, 0, 2}, [3]float32{7, 6, 12})
	for _, preset := range RoomPresets() {
		rig := ResolveRoom(preset, &b)
		require.NotNil(t, rig, "preset %s", preset)
		for i, p := range rig.Points {
			assert.True(t, b.Contains(p.Position), "preset %s light %d at %v", preset, i, p.Position)
		}
	}
}

func TestResolveRoomIntimateLowersLights(t *testing.T) {
	b := testBounds()
	rig := ResolveRoom(RoomIntimate, &b)
	require.NotNil(t, rig)
	require.Len(t, rig.Points, 3)
	for _, p := range rig.Points {
		assert.InDelta(t, 3.1, p.Position[1], 1e-5)
		// Reduced footprint: 10 * 0.8 * 0.6.
		assert.InDelta(t, 4.8, p.FalloffDistance, 1e-5)
	}
	assert.Nil(t, rig.Hemisphere)
}

func TestResolveRoomIsPure(t *testing.T) {
	b := testBounds()
	first := ResolveRoom(RoomWarmEvening, &b)
	first.Points[0].Intensity = 42
	second := ResolveRoom(RoomWarmEvening, &b)
	assert.InDelta(t, 0.8, second.Points[0].Intensity, 1e-5, "resolver output must not alias the preset table")
}

func TestRoomPresetKnown(t *testing.T) {
	assert.True(t, RoomOff.Known())
	assert.True(t, RoomGallery.Known())
	assert.False(t, RoomPreset("disco").Known())
	assert.Len(t, RoomPresets(), 5)
}

func TestRigScaled(t *testing.T) {
	b := testBounds()
	rig := ResolveRoom(RoomWarmEvening, &b)
	scaled := rig.Scaled(2)
	require.NotNil(t, scaled)
	assert.InDelta(t, 0.8, scaled.Ambient.Intensity, 1e-5)
	assert.InDelta(t, 0.6, scaled.Hemisphere.Intensity, 1e-5)
	assert.InDelta(t, 1.6, scaled.Points[0].Intensity, 1e-5)
	// The source rig is untouched.
	assert.InDelta(t, 0.4, rig.Ambient.Intensity, 1e-5)

	var nilRig *Rig
	assert.Nil(t, nilRig.Scaled(2))

	zero := rig.Scaled(0)
	assert.Zero(t, zero.Points[0].Intensity)
	assert.InDelta(t, 8.0, zero.Points[0].FalloffDistance, 1e-5, "scaling touches intensity only")
}
