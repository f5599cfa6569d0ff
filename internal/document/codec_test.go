package document

import (
	"strings"
	"testing"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-composer/internal/lighting"
)

func sampleDocument() Document {
	i := float32(1.5)
	b := float32(2)
	return Document{
		Library: []Asset{{Name: "chair", URL: "data:model/gltf-binary;base64,AAAA"}},
		Items: []Item{{
			ID: "i1", Name: "chair", URL: "data:model/gltf-binary;base64,AAAA",
			Position: [3]float32{1, 2, 3},
			Rotation: [3]float32{0, 1.5708, 0},
			Scale:    [3]float32{1, 1, 1},
		}},
		Environment:             "night",
		RoomLightingPreset:      lighting.RoomCoolNight,
		FurnitureLightingPreset: lighting.FurnitureSoft,
		RoomLightIntensity:      &i,
		RoomMaterialBrightness:  &b,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleDocument()
	data, err := Encode(want)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeMalformedInput(t *testing.T) {
	_, err := Decode([]byte(`{"items": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")

	_, err = Decode([]byte(`{"items": "not-a-list"}`))
	assert.Error(t, err, "type mismatches are rejected, not coerced")
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	data, err := Encode(Document{Items: []Item{}})
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"items"`)
	assert.NotContains(t, s, `"library"`)
	assert.NotContains(t, s, `"roomLightIntensity"`)
	assert.NotContains(t, s, `"url"`)
}

func TestSaveLoadOnFilesystem(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)

	want := sampleDocument()
	require.NoError(t, Save(fsys, "scenes/loft.json", want))

	got, err := Load(fsys, "scenes/loft.json")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Overwrite replaces the previous content entirely.
	want.Environment = "sunset"
	require.NoError(t, Save(fsys, "scenes/loft.json", want))
	got, err = Load(fsys, "scenes/loft.json")
	require.NoError(t, err)
	assert.Equal(t, "sunset", got.Environment)
}

func TestLoadMissingFile(t *testing.T) {
	fsys, err := mem.NewFS()
	require.NoError(t, err)
	_, err = Load(fsys, "nope.json")
	assert.Error(t, err)
}

func TestNormalizedFillsDefaults(t *testing.T) {
	d := Document{}.Normalized()
	assert.NotNil(t, d.Items)
	assert.Equal(t, "studio", d.Environment)
	assert.Equal(t, lighting.RoomWarmEvening, d.RoomLightingPreset)
	assert.Equal(t, lighting.FurnitureDefault, d.FurnitureLightingPreset)
	require.NotNil(t, d.RoomLightIntensity)
	assert.Equal(t, float32(1), *d.RoomLightIntensity)
	require.NotNil(t, d.FurnitureLightIntensity)
	require.NotNil(t, d.RoomMaterialBrightness)
	assert.Equal(t, float32(1), *d.RoomMaterialBrightness)
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	zero := float32(0)
	d := Document{
		Environment:        "night",
		RoomLightingPreset: lighting.RoomPreset("mystery"),
		RoomLightIntensity: &zero,
	}.Normalized()
	assert.Equal(t, "night", d.Environment)
	assert.Equal(t, lighting.RoomPreset("mystery"), d.RoomLightingPreset, "unknown presets pass through to the resolver")
	assert.Equal(t, float32(0), *d.RoomLightIntensity, "explicit zero is not an absent field")
}

func TestDecodePartialDocument(t *testing.T) {
	doc, err := Decode([]byte(strings.TrimSpace(`
{
	"items": [{"id": "a", "name": "chair", "position": [0,1,0], "rotation": [0,0,0], "scale": [1,1,1]}]
}`)))
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Nil(t, doc.RoomLightIntensity)

	doc = doc.Normalized()
	assert.Equal(t, float32(1), *doc.RoomLightIntensity)
}
