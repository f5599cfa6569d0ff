package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-composer/internal/document"
	"scene-composer/internal/lighting"
)

func populatedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.AddAsset(LibraryAsset{Name: "chair", URL: "data:model/gltf-binary;base64,AAAA"}))
	require.NoError(t, s.AddAsset(LibraryAsset{Name: "table", URL: "https://example.com/table.glb"}))
	_, err := s.AddItem("chair")
	require.NoError(t, err)
	_, err = s.AddItem("table")
	require.NoError(t, err)
	s.SetEnvironment("night")
	s.SetRoomPreset(lighting.RoomCoolNight)
	s.SetFurniturePreset(lighting.FurnitureSoft)
	s.SetRoomIntensity(1.5)
	s.SetFurnitureIntensity(0.5)
	s.SetRoomBrightness(2)
	return s
}

func TestDocumentProjection(t *testing.T) {
	s := populatedStore(t)
	doc := s.Document()

	require.Len(t, doc.Library, 2)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "data:model/gltf-binary;base64,AAAA", doc.Items[0].URL, "items carry their asset's payload reference")
	assert.Equal(t, "https://example.com/table.glb", doc.Items[1].URL)

	assert.Equal(t, "night", doc.Environment)
	assert.Equal(t, lighting.RoomCoolNight, doc.RoomLightingPreset)
	assert.Equal(t, lighting.FurnitureSoft, doc.FurnitureLightingPreset)
	require.NotNil(t, doc.RoomLightIntensity)
	assert.Equal(t, float32(1.5), *doc.RoomLightIntensity)
	require.NotNil(t, doc.RoomMaterialBrightness)
	assert.Equal(t, float32(2), *doc.RoomMaterialBrightness)
}

func TestDocumentSharesNoMemoryWithStore(t *testing.T) {
	s := populatedStore(t)
	doc := s.Document()
	doc.Library[0].Name = "mutated"
	doc.Items[0].Position = [3]float32{9, 9, 9}

	a, ok := s.Asset("chair")
	require.True(t, ok)
	assert.Equal(t, "chair", a.Name)
	assert.Equal(t, [3]float32{0, 1, 0}, s.Items()[0].Position)
}

func TestInfoDocumentStripsPayloads(t *testing.T) {
	s := populatedStore(t)
	doc := s.InfoDocument()
	assert.Nil(t, doc.Library)
	require.Len(t, doc.Items, 2)
	for _, it := range doc.Items {
		assert.Empty(t, it.URL)
	}
	assert.Equal(t, "night", doc.Environment, "knobs survive the export")
}

func TestLoadDocumentRoundTrip(t *testing.T) {
	src := populatedStore(t)
	items := src.Items()
	pos := [3]float32{1, 2, 3}
	require.True(t, src.UpdateItem(items[0].ID, TransformPatch{Position: &pos}))
	doc := src.Document()

	dst := New()
	dst.LoadDocument(doc)

	assert.Equal(t, src.Assets(), dst.Assets())
	gotItems := dst.Items()
	require.Len(t, gotItems, 2)
	assert.Equal(t, pos, gotItems[0].Position)
	assert.Equal(t, "chair", gotItems[0].Asset, "items rebind to their library asset")
	assert.Equal(t, "table", gotItems[1].Asset)
	assert.Equal(t, "night", dst.Environment())
	assert.Equal(t, float32(1.5), dst.RoomIntensity())
	assert.Equal(t, float32(2), dst.RoomBrightness())
}

func TestLoadDocumentEmptyAppliesDefaults(t *testing.T) {
	s := populatedStore(t)
	s.LoadDocument(document.Document{})

	assert.Empty(t, s.Assets())
	assert.Empty(t, s.Items())
	assert.Equal(t, "studio", s.Environment())
	assert.Equal(t, lighting.RoomWarmEvening, s.RoomPreset())
	assert.Equal(t, lighting.FurnitureDefault, s.FurniturePreset())
	assert.Equal(t, float32(1), s.RoomIntensity())
	assert.Equal(t, float32(1), s.FurnitureIntensity())
	assert.Equal(t, float32(1), s.RoomBrightness())
}

func TestLoadDocumentIsFullReplace(t *testing.T) {
	s := populatedStore(t)
	items := s.Items()
	require.True(t, s.Select(items[0].ID))
	s.SetRoomAsset("chair")

	s.LoadDocument(document.Document{
		Library: []document.Asset{{Name: "bed", URL: "u"}},
		Items:   []document.Item{{ID: "i1", Name: "bed", Position: [3]float32{0, 0, 0}, Scale: [3]float32{1, 1, 1}}},
	})

	_, ok := s.Selected()
	assert.False(t, ok, "selection does not survive a load")
	_, ok = s.RoomAsset()
	assert.False(t, ok, "room designation does not survive a load")
	assert.Nil(t, s.RoomRig())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "bed", s.Items()[0].Asset, "rebinding falls back to the item name")
}

func TestLoadDocumentRebindsByURLOverName(t *testing.T) {
	s := New()
	s.LoadDocument(document.Document{
		Library: []document.Asset{{Name: "renamed-chair", URL: "https://example.com/chair.glb"}},
		Items: []document.Item{{
			ID: "i1", Name: "chair", URL: "https://example.com/chair.glb",
			Scale: [3]float32{1, 1, 1},
		}},
	})
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "renamed-chair", s.Items()[0].Asset)
}

func TestLoadDocumentInvalidatesInFlightLoads(t *testing.T) {
	s := populatedStore(t)
	gen, ok := s.BeginLoad("chair")
	require.True(t, ok)

	s.LoadDocument(document.Document{})
	assert.False(t, s.FinishLoad("chair", gen), "loads begun before a document load are discarded")
}

func TestLoadDocumentInvalidatesLoadsForReusedNames(t *testing.T) {
	s := New()
	require.NoError(t, s.AddAsset(LibraryAsset{Name: "chair", URL: "https://example.com/old.glb"}))
	gen, ok := s.BeginLoad("chair")
	require.True(t, ok)

	// The new document carries a same-named asset with different payload;
	// geometry fetched from the old url must never bind to it.
	s.LoadDocument(document.Document{
		Library: []document.Asset{{Name: "chair", URL: "https://example.com/new.glb"}},
	})
	assert.False(t, s.FinishLoad("chair", gen), "completion from before the document load must be discarded even when the name is reused")

	gen2, ok := s.BeginLoad("chair")
	require.True(t, ok)
	assert.True(t, s.FinishLoad("chair", gen2), "loads begun after the document load proceed normally")
}

func TestLoadDocumentDeduplicatesLibraryNames(t *testing.T) {
	s := New()
	s.LoadDocument(document.Document{
		Library: []document.Asset{
			{Name: "chair", URL: "u1"},
			{Name: "chair", URL: "u2"},
			{Name: "table", URL: "u3"},
		},
	})
	require.Len(t, s.Assets(), 2, "duplicate names collapse first-wins")
	a, ok := s.Asset("chair")
	require.True(t, ok)
	assert.Equal(t, "u1", a.URL)
	_, ok = s.Asset("table")
	assert.True(t, ok)
}
