package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMinMaxDerivesCenter(t *testing.T) {
	b := FromMinMax([3]float32{-5, 0, -5}, [3]float32{5, 4, 5})
	assert.Equal(t, float32(0), b.CenterX)
	assert.Equal(t, float32(2), b.CenterY)
	assert.Equal(t, float32(0), b.CenterZ)
	assert.Equal(t, float32(10), b.Width())
	assert.Equal(t, float32(4), b.Height())
	assert.Equal(t, float32(10), b.Depth())
}

func TestFromMinMaxNormalizesSwappedComponents(t *testing.T) {
	b := FromMinMax([3]float32{5, 4, 5}, [3]float32{-5, 0, -5})
	assert.Equal(t, float32(-5), b.MinX)
	assert.Equal(t, float32(5), b.MaxX)
	assert.Equal(t, float32(0), b.MinY)
	assert.Equal(t, float32(4), b.MaxY)
	assert.LessOrEqual(t, b.MinZ, b.CenterZ)
	assert.LessOrEqual(t, b.CenterZ, b.MaxZ)
}

func TestUnion(t *testing.T) {
	a := FromMinMax([3]float32{-1, 0, -1}, [3]float32{1, 1, 1})
	b := FromMinMax([3]float32{0, -2, 0}, [3]float32{3, 0, 2})
	u := Union(a, b)
	assert.Equal(t, float32(-1), u.MinX)
	assert.Equal(t, float32(3), u.MaxX)
	assert.Equal(t, float32(-2), u.MinY)
	assert.Equal(t, float32(1), u.MaxY)
	assert.Equal(t, float32(1), u.CenterX)
}

func TestFromMeshVertices(t *testing.T) {
	b := FromMeshVertices(
		[]float32{-2, 0, -3, 2, 1, 3},
		[]float32{0, 5, 0},
	)
	require.False(t, b.IsEmpty())
	assert.Equal(t, float32(-2), b.MinX)
	assert.Equal(t, float32(2), b.MaxX)
	assert.Equal(t, float32(5), b.MaxY)
	assert.Equal(t, float32(-3), b.MinZ)
	assert.Equal(t, float32(3), b.MaxZ)
}

func TestFromMeshVerticesIgnoresPartialTriple(t *testing.T) {
	// The trailing 99 has no y/z and must not widen the bounds.
	b := FromMeshVertices([]float32{1, 1, 1, 2, 2, 2, 99})
	assert.Equal(t, float32(2), b.MaxX)
}

func TestFromMeshVerticesEmpty(t *testing.T) {
	assert.True(t, FromMeshVertices().IsEmpty())
	assert.True(t, FromMeshVertices(nil, []float32{1, 2}).IsEmpty())
}

func TestContainsInclusive(t *testing.T) {
	b := FromMinMax([3]float32{-1, 0, -1}, [3]float32{1, 2, 1})
	assert.True(t, b.Contains([3]float32{0, 1, 0}))
	assert.True(t, b.Contains([3]float32{1, 2, 1}), "boundary points are inside")
	assert.False(t, b.Contains([3]float32{1.01, 1, 0}))
}
