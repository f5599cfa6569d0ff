package geom

import (
	"github.com/chewxy/math32"
)

// RoomBounds is the axis-aligned bounding volume of the loaded room model.
// It is derived state: recomputed whenever the room model is (re)loaded and
// cleared when the room asset is removed. Never persisted.
type RoomBounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32

	CenterX, CenterY, CenterZ float32
}

// IsEmpty reports whether the bounds are the degenerate zero volume produced
// for a model with no renderable geometry. Callers must tolerate this: an
// empty room is valid scene state, not an error.
func (b RoomBounds) IsEmpty() bool {
	return b.MinX == b.MaxX && b.MinY == b.MaxY && b.MinZ == b.MaxZ
}

// Width returns the X extent.
func (b RoomBounds) Width() float32 { return b.MaxX - b.MinX }

// Height returns the Y extent.
func (b RoomBounds) Height() float32 { return b.MaxY - b.MinY }

// Depth returns the Z extent.
func (b RoomBounds) Depth() float32 { return b.MaxZ - b.MinZ }

// withCenter fills the Center fields from the min/max fields.
func (b RoomBounds) withCenter() RoomBounds {
	b.CenterX = (b.MinX + b.MaxX) * 0.5
	b.CenterY = (b.MinY + b.MaxY) * 0.5
	b.CenterZ = (b.MinZ + b.MaxZ) * 0.5
	return b
}

// FromMinMax returns bounds spanning min to max with the center derived.
// Swapped components are normalized so min <= center <= max holds per axis.
func FromMinMax(min, max [3]float32) RoomBounds {
	b := RoomBounds{
		MinX: math32.Min(min[0], max[0]), MaxX: math32.Max(min[0], max[0]),
		MinY: math32.Min(min[1], max[1]), MaxY: math32.Max(min[1], max[1]),
		MinZ: math32.Min(min[2], max[2]), MaxZ: math32.Max(min[2], max[2]),
	}
	return b.withCenter()
}

// Union returns the smallest bounds containing both a and b.
func Union(a, b RoomBounds) RoomBounds {
	u := RoomBounds{
		MinX: math32.Min(a.MinX, b.MinX), MaxX: math32.Max(a.MaxX, b.MaxX),
		MinY: math32.Min(a.MinY, b.MinY), MaxY: math32.Max(a.MaxY, b.MaxY),
		MinZ: math32.Min(a.MinZ, b.MinZ), MaxZ: math32.Max(a.MaxZ, b.MaxZ),
	}
	return u.withCenter()
}

// FromMeshVertices computes the union bounds over one or more flat vertex
// buffers laid out as x,y,z triples (the layout raylib meshes use). Buffers
// with a trailing partial triple have the partial vertex ignored. If no
// complete vertex exists in any buffer the degenerate zero bounds is returned.
func FromMeshVertices(buffers ...[]float32) RoomBounds {
	var b RoomBounds
	first := true
	for _, verts := range buffers {
		for i := 0; i+2 < len(verts); i += 3 {
			x, y, z := verts[i], verts[i+1], verts[i+2]
			if first {
				b = RoomBounds{MinX: x, MaxX: x, MinY: y, MaxY: y, MinZ: z, MaxZ: z}
				first = false
				continue
			}
			b.MinX = math32.Min(b.MinX, x)
			b.MaxX = math32.Max(b.MaxX, x)
			b.MinY = math32.Min(b.MinY, y)
			b.MaxY = math32.Max(b.MaxY, y)
			b.MinZ = math32.Min(b.MinZ, z)
			b.MaxZ = math32.Max(b.MaxZ, z)
		}
	}
	return b.withCenter()
}

// Contains reports whether point p lies inside the bounds (inclusive).
func (b RoomBounds) Contains(p [3]float32) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX &&
		p[1] >= b.MinY && p[1] <= b.MaxY &&
		p[2] >= b.MinZ && p[2] <= b.MaxZ
}
