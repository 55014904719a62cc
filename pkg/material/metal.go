package material

import "github.com/loves-go/pathtracer/pkg/core"

// Metal is a specular reflector perturbed by a fuzz parameter (spec §4.5).
type Metal struct {
	Albedo core.Vec4
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec4, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the normalized incoming direction about the normal,
// perturbed by fuzz*random_in_unit_sphere(). Scatters only if the result
// lies in the hemisphere above the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, scatters
}

// Emitted returns zero; metal doesn't emit light.
func (m *Metal) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec4 {
	return core.ColorBlack
}
