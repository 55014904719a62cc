package core

import (
	"math"
	"math/rand"
)

// Rng is the per-worker random source threaded through scattering and
// sampling. Spec §5 requires every worker to draw from an independent
// stream; wrapping *rand.Rand (rather than passing it around bare) gives a
// single place to hang the distribution helpers used throughout materials,
// textures and the camera.
type Rng struct {
	r *rand.Rand
}

// NewRng creates an RNG seeded independently from a master seed and a
// stream index, so a fixed master seed reproduces the same stream
// regardless of how callers are scheduled or partitioned (spec §5, §8
// properties 12 and F). The driver keys this by pixel index rather than
// worker index, so a pixel's sample sequence never depends on tiling or
// worker-count.
func NewRng(masterSeed int64, streamIndex int) *Rng {
	return &Rng{r: rand.New(rand.NewSource(int64(uint64(masterSeed) + uint64(streamIndex)*0x9E3779B97F4A7C15)))}
}

// Float64 returns a uniform float in [0,1)
func (rng *Rng) Float64() float64 {
	return rng.r.Float64()
}

// FloatRange returns a uniform float in [lo,hi)
func (rng *Rng) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*rng.r.Float64()
}

// Vec3 returns a uniform random point in the unit cube [0,1)^3
func (rng *Rng) Vec3() Vec3 {
	return NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
}

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// sphere via rejection sampling.
func RandomInUnitSphere(rng *Rng) Vec3 {
	for {
		p := NewVec3(
			rng.FloatRange(-1, 1),
			rng.FloatRange(-1, 1),
			rng.FloatRange(-1, 1),
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit
// sphere's surface, used by Lambertian scattering (spec §4.5).
func RandomUnitVector(rng *Rng) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane, used for thin-lens aperture sampling (spec §4.6).
func RandomInUnitDisk(rng *Rng) Vec3 {
	for {
		p := NewVec3(rng.FloatRange(-1, 1), rng.FloatRange(-1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInHemisphere returns a uniformly distributed direction in the
// hemisphere around normal.
func RandomInHemisphere(normal Vec3, rng *Rng) Vec3 {
	v := RandomInUnitSphere(rng)
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Negate()
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
