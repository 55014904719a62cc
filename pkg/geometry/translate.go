package geometry

import "github.com/loves-go/pathtracer/pkg/core"

// Translate wraps a Hittable and offsets it by a fixed vector, implemented
// by transforming the incoming ray by -offset, testing the wrapped
// instance, then translating the resulting point back (spec §4.3). Ported
// from original_source's Translate::hit/bounding_box.
type Translate struct {
	Instance core.Hittable
	Offset   core.Vec3
}

// NewTranslate wraps instance with a fixed world-space offset.
func NewTranslate(instance core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Instance: instance, Offset: offset}
}

// Hit transforms the ray into the instance's local space by subtracting
// the offset, then translates the resulting hit point back into world
// space.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	translated := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Instance.Hit(translated, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the wrapped instance's box, offset by Offset.
func (tr *Translate) BoundingBox() core.AABB {
	b := tr.Instance.BoundingBox()
	return core.NewAABB(b.Min.Add(tr.Offset), b.Max.Add(tr.Offset))
}
