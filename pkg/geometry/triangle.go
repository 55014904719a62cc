package geometry

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Triangle is a single triangle stored as three vertices; the face normal
// is cached at construction. Intersection follows
// original_source/src/geometry.hpp's Triangle::hit: reject near-parallel
// rays, solve the plane equation for t, then an edge-sign inside/outside
// test (spec §4.1).
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// Hit intersects the ray with the triangle's plane, then tests the hit
// point against the three edges using the cross-product sign test.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-6

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	n := edge1.Cross(edge2) // unnormalized plane normal, |n| = 2*area

	denom := n.Dot(ray.Direction)
	if math.Abs(denom) < epsilon {
		return nil, false // ray parallel to triangle's plane
	}

	d := -n.Dot(t.V0)
	tHit := -(n.Dot(ray.Origin) + d) / denom
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	p := ray.At(tHit)

	c0 := t.V1.Subtract(t.V0).Cross(p.Subtract(t.V0))
	if n.Dot(c0) < 0 {
		return nil, false
	}
	c1 := t.V2.Subtract(t.V1).Cross(p.Subtract(t.V1))
	if n.Dot(c1) < 0 {
		return nil, false
	}
	c2 := t.V0.Subtract(t.V2).Cross(p.Subtract(t.V2))
	if n.Dot(c2) < 0 {
		return nil, false
	}

	total := n.Dot(n)
	var u, v float64
	if total > 0 {
		u = n.Dot(c2) / total // barycentric weight at V1
		v = n.Dot(c0) / total // barycentric weight at V2
	}

	hit := &core.HitRecord{T: tHit, Point: p, Material: t.Material, U: u, V: v}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
