package geometry

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Rotate wraps a Hittable and rotates it about its bounding box's center by
// a fixed quaternion, implemented by rotating the incoming ray by the
// forward rotation, testing the wrapped instance, then rotating the
// resulting point and normal back by the inverse rotation (spec §4.3).
// Ported from original_source's Rotate::hit/bounding_box.
type Rotate struct {
	Instance core.Hittable
	Rotation core.Quaternion
	center   core.Vec3
	bbox     core.AABB
}

// NewRotate wraps instance with a rotation about its bounding box center.
// The world-space bounding box is recomputed from the eight rotated
// corners of the instance's box.
func NewRotate(instance core.Hittable, rotation core.Quaternion) *Rotate {
	r := &Rotate{Instance: instance, Rotation: rotation}

	box := instance.BoundingBox()
	r.center = box.Min.Add(box.Max).Multiply(0.5)

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				corner := core.NewVec3(x, y, z)
				rotated := r.center.Add(rotation.RotateVec3(corner.Subtract(r.center)))

				min = core.NewVec3(math.Min(min.X, rotated.X), math.Min(min.Y, rotated.Y), math.Min(min.Z, rotated.Z))
				max = core.NewVec3(math.Max(max.X, rotated.X), math.Max(max.Y, rotated.Y), math.Max(max.Z, rotated.Z))
			}
		}
	}

	r.bbox = core.NewAABB(min, max)
	return r
}

func lerpCorner(i int, lo, hi float64) float64 {
	if i == 1 {
		return hi
	}
	return lo
}

// Hit rotates the ray into the instance's local space, tests it, then
// rotates the resulting point and normal back into world space.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotatedOrigin := r.center.Add(r.Rotation.RotateVec3(ray.Origin.Subtract(r.center)))
	rotatedDirection := r.Rotation.RotateVec3(ray.Direction)
	rotated := core.NewRayAtTime(rotatedOrigin, rotatedDirection, ray.Time)

	hit, ok := r.Instance.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	inverse := r.Rotation.Inverse()
	hit.Point = r.center.Add(inverse.RotateVec3(hit.Point.Subtract(r.center)))
	hit.Normal = inverse.RotateVec3(hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed world-space box spanning the rotated
// corners of the wrapped instance's local box.
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
