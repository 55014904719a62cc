// Package integrator implements the bounded recursive Monte-Carlo radiance
// estimator (spec.md §4.7).
package integrator

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Scene is the minimal surface the estimator needs: a root hittable to
// intersect against and a background radiance for rays that escape it.
// Scene builders (pkg/scene) satisfy this alongside their richer,
// camera-carrying concrete type.
type Scene interface {
	Root() core.Hittable
	Background(ray core.Ray) core.Vec4
}

const shadowAcneEpsilon = 1e-3

// Estimate computes the radiance along ray by bounded recursive path
// tracing, per spec.md §4.7: depth=0 returns black; on a hit, emitted
// light plus attenuation times the recursive estimate of the scattered
// ray; on a miss, the scene's background radiance.
func Estimate(ray core.Ray, scene Scene, depth int, rng *core.Rng) core.Vec4 {
	if depth <= 0 {
		return core.ColorBlack
	}

	hit, isHit := scene.Root().Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return scene.Background(ray)
	}

	emitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, rng)
	if !didScatter {
		return emitted
	}

	incoming := Estimate(scatter.Scattered, scene, depth-1, rng)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// GradientSky returns the vertical-gradient background radiance
// lerp(WHITE, SKY, 0.5·(normalize(dir).y+1)) described in spec.md §4.7,
// ported from teacher pkg/integrator/path_tracing.go's BackgroundGradient.
func GradientSky(ray core.Ray, top, bottom core.Vec4) core.Vec4 {
	unitDir := ray.Direction.Normalize()
	t := 0.5 * (unitDir.Y + 1.0)
	return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
}
