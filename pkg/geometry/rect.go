package geometry

import "github.com/loves-go/pathtracer/pkg/core"

// RectAxis selects which pair of world axes an AxisAlignedRect lies in.
type RectAxis int

const (
	RectXY RectAxis = iota
	RectXZ
	RectYZ
)

// rectAABBThickness pads the degenerate axis so the rectangle's bounding
// box is never zero-thickness (ported from original_source/src/rect.hpp's
// RECT_AABB_THICK, spec §4.1).
const rectAABBThickness = 0.001

// AxisAlignedRect is a rectangle at constant coordinate K on one of the
// three axis-aligned planes, spanning [A0,A1]x[B0,B1] in the other two
// (spec §4.1). Ported from original_source/src/rect.hpp's
// AxisAlignedRect::hit.
type AxisAlignedRect struct {
	Axis         RectAxis
	A0, A1       float64
	B0, B1       float64
	K            float64
	Material     core.Material
}

// NewAxisAlignedRect creates a rectangle on the given plane.
func NewAxisAlignedRect(axis RectAxis, a0, a1, b0, b1, k float64, material core.Material) *AxisAlignedRect {
	return &AxisAlignedRect{Axis: axis, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
}

// Hit solves the single linear equation in t for the rectangle's plane,
// then range-checks the two in-plane coordinates.
func (r *AxisAlignedRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var origK, dirK, origA, dirA, origB, dirB float64

	switch r.Axis {
	case RectXY:
		origK, dirK = ray.Origin.Z, ray.Direction.Z
		origA, dirA = ray.Origin.X, ray.Direction.X
		origB, dirB = ray.Origin.Y, ray.Direction.Y
	case RectXZ:
		origK, dirK = ray.Origin.Y, ray.Direction.Y
		origA, dirA = ray.Origin.X, ray.Direction.X
		origB, dirB = ray.Origin.Z, ray.Direction.Z
	case RectYZ:
		origK, dirK = ray.Origin.X, ray.Direction.X
		origA, dirA = ray.Origin.Y, ray.Direction.Y
		origB, dirB = ray.Origin.Z, ray.Direction.Z
	}

	if dirK == 0 {
		return nil, false
	}

	t := (r.K - origK) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	a := origA + t*dirA
	b := origB + t*dirB
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	u := (a - r.A0) / (r.A1 - r.A0)
	v := (b - r.B0) / (r.B1 - r.B0)

	var outwardNormal core.Vec3
	switch r.Axis {
	case RectXY:
		outwardNormal = core.NewVec3(0, 0, 1)
	case RectXZ:
		outwardNormal = core.NewVec3(0, 1, 0)
	case RectYZ:
		outwardNormal = core.NewVec3(1, 0, 0)
	}

	hit := &core.HitRecord{T: t, Point: ray.At(t), Material: r.Material, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the rectangle's plane extent padded on the constant
// axis so it remains non-degenerate.
func (r *AxisAlignedRect) BoundingBox() core.AABB {
	switch r.Axis {
	case RectXY:
		return core.NewAABB(
			core.NewVec3(r.A0, r.B0, r.K-rectAABBThickness),
			core.NewVec3(r.A1, r.B1, r.K+rectAABBThickness),
		)
	case RectXZ:
		return core.NewAABB(
			core.NewVec3(r.A0, r.K-rectAABBThickness, r.B0),
			core.NewVec3(r.A1, r.K+rectAABBThickness, r.B1),
		)
	default: // RectYZ
		return core.NewAABB(
			core.NewVec3(r.K-rectAABBThickness, r.A0, r.B0),
			core.NewVec3(r.K+rectAABBThickness, r.A1, r.B1),
		)
	}
}
