package geometry

import "github.com/loves-go/pathtracer/pkg/core"

// Box is a closed axis-aligned box built from six AxisAlignedRect faces,
// delegating to an internal HittableList (spec §4.1). Ported from
// original_source/src/rect.hpp's Box; the three rect constructors' axis
// parameter order is independently re-derived rather than copied from a
// single source line (spec §9 open question): XY uses
// (min.X,max.X,min.Y,max.Y), XZ uses (min.X,max.X,min.Z,max.Z), YZ uses
// (min.Y,max.Y,min.Z,max.Z).
type Box struct {
	Min, Max core.Vec3
	list     *HittableList
}

// NewBox creates a closed box spanning [min,max] with the given material
// on all six faces.
func NewBox(min, max core.Vec3, material core.Material) *Box {
	b := &Box{Min: min, Max: max}
	b.list = NewHittableList(
		NewAxisAlignedRect(RectXY, min.X, max.X, min.Y, max.Y, max.Z, material), // front  (+Z)
		NewAxisAlignedRect(RectXY, min.X, max.X, min.Y, max.Y, min.Z, material), // back   (-Z)
		NewAxisAlignedRect(RectXZ, min.X, max.X, min.Z, max.Z, max.Y, material), // top    (+Y)
		NewAxisAlignedRect(RectXZ, min.X, max.X, min.Z, max.Z, min.Y, material), // bottom (-Y)
		NewAxisAlignedRect(RectYZ, min.Y, max.Y, min.Z, max.Z, max.X, material), // right  (+X)
		NewAxisAlignedRect(RectYZ, min.Y, max.Y, min.Z, max.Z, min.X, material), // left   (-X)
	)
	return b
}

// Hit delegates to the internal hittable list of six faces.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.list.Hit(ray, tMin, tMax)
}

// BoundingBox returns [Min,Max] directly (the faces' padded boxes would
// otherwise each be slightly larger than the box itself on their
// constant axis).
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
