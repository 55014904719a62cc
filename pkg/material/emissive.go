package material

import "github.com/loves-go/pathtracer/pkg/core"

// Emissive is a diffuse light: it never scatters incoming rays, it only
// emits a constant color (spec §4.5).
type Emissive struct {
	Emission core.Vec4
}

// NewEmissive creates an emissive material with the given emitted color.
func NewEmissive(emission core.Vec4) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter never scatters.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the light's fixed emission color.
func (e *Emissive) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec4 {
	return e.Emission
}
