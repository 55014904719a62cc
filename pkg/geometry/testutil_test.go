package geometry

import "github.com/loves-go/pathtracer/pkg/core"

// dummyMaterial never scatters; used as a placeholder material in geometry
// tests that only exercise intersection math.
type dummyMaterial struct{}

func (dummyMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (dummyMaterial) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec4 {
	return core.Vec4{}
}
