package geometry

import "github.com/loves-go/pathtracer/pkg/core"

// HittableList sequentially tests every child, shrinking tMax to the
// closest confirmed hit (spec §4.1).
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
	hasBbox bool
}

// NewHittableList creates a hittable list from the given objects.
func NewHittableList(objects ...core.Hittable) *HittableList {
	l := &HittableList{}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends an object and folds its bounding box into the list's box.
func (l *HittableList) Add(o core.Hittable) {
	l.Objects = append(l.Objects, o)
	if !l.hasBbox {
		l.bbox = o.BoundingBox()
		l.hasBbox = true
	} else {
		l.bbox = l.bbox.Union(o.BoundingBox())
	}
}

// Hit tests every object in the list, keeping only the closest hit.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, o := range l.Objects {
		if hit, ok := o.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every child's bounding box.
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
