package geometry

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Sphere represents a sphere shape, ported from
// original_source/src/geometry.hpp's Sphere::hit (spec §4.1). A negative
// radius is allowed and intentionally inverts the outward normal, used to
// model hollow glass (spec §7, §9).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{T: root, Point: point, Material: s.Material, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// sphereUV maps a point on the unit sphere to surface parameters per spec
// §4.1: u = (atan2(-z,x) + pi)/(2*pi), v = acos(-y)/pi.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2.0 * math.Pi), theta / math.Pi
}

// MovingSphere linearly interpolates its center between two endpoints over
// [Time0,Time1], evaluated at the ray's shutter time (spec §4.1).
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere whose center moves linearly with time.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: material}
}

// CenterAt returns the sphere's center at the given time.
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit tests if a ray intersects the sphere at the ray's shutter time.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.HitRecord{T: root, Point: point, Material: s.Material, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the union of the bounding boxes at both endpoint
// times (spec §4.1).
func (s *MovingSphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Union(box1)
}
