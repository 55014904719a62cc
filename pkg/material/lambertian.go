package material

import "github.com/loves-go/pathtracer/pkg/core"

// Lambertian is a perfectly diffuse material: the scattered direction is
// the surface normal perturbed by a random unit vector, and the
// attenuation comes from an arbitrary texture rather than a fixed color
// (spec §4.5).
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material with a constant albedo.
func NewLambertian(albedo core.Vec4) *Lambertian {
	return &Lambertian{Albedo: NewSolidTexture(albedo)}
}

// NewLambertianTexture creates a Lambertian material backed by an
// arbitrary texture.
func NewLambertianTexture(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always scatters toward normal + random_unit_vector(), falling
// back to the normal itself if the result is near zero.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rng))
	if direction.IsNearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)

	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted returns zero; Lambertian surfaces don't emit light.
func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec4 {
	return core.ColorBlack
}
