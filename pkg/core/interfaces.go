package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord carries the result of a ray-hittable intersection: the point,
// the surface normal oriented against the ray, which side was hit, the
// ray parameter and surface uv, and the material at the surface (spec §3).
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the ray
	FrontFace bool     // True if the ray hit the outward-facing side
	T         float64  // Ray parameter at the hit
	U, V      float64  // Surface parameterization
	Material  Material // Non-owning handle to the material at the surface
}

// SetFaceNormal orients the normal against the incoming ray and records
// which side was hit. outwardNormal must be a unit vector.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is the polymorphic capability implemented by every primitive,
// aggregate and instance wrapper in the scene graph (spec §3). Hittables
// are constructed once and shared immutably across render workers.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// ScatterResult is the outcome of a successful material scatter: the
// attenuation to apply and the next ray to trace.
type ScatterResult struct {
	Attenuation Vec4
	Scattered   Ray
}

// Material is the polymorphic capability exposing scatter and emission
// (spec §3). Materials are shared immutably across the scene graph.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rng *Rng) (ScatterResult, bool)
	Emitted(rayIn Ray, hit HitRecord) Vec4
}

// Texture evaluates a spatially-varying color at a surface parameterization
// and world point (spec §4.4).
type Texture interface {
	Value(u, v float64, p Vec3) Vec4
}
