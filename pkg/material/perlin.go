package material

import (
	"math"
	"math/rand"

	"github.com/loves-go/pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is classic gradient noise over 256 random unit vectors indexed
// through three independent permutation tables, one per axis (spec §4.4).
// Ported from original_source/src/image.hpp's Perlin class, fixing the
// point-count allocation bug documented there (spec §9 open question):
// the vectors and permutation tables are each allocated with exactly
// perlinPointCount entries.
type Perlin struct {
	vecs  []core.Vec3
	permX []int
	permY []int
	permZ []int
}

// NewPerlin builds a Perlin noise generator seeded from rng.
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{vecs: make([]core.Vec3, perlinPointCount)}
	for i := range p.vecs {
		p.vecs[i] = randomUnitVectorRand(rng)
	}

	p.permX = perlinGeneratePerm(rng)
	p.permY = perlinGeneratePerm(rng)
	p.permZ = perlinGeneratePerm(rng)

	return p
}

func randomUnitVectorRand(rng *rand.Rand) core.Vec3 {
	for {
		v := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		lensq := v.LengthSquared()
		if lensq > 1e-160 && lensq <= 1 {
			return v.Multiply(1 / math.Sqrt(lensq))
		}
	}
}

func perlinGeneratePerm(rng *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		target := rng.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise evaluates trilinearly-interpolated gradient noise at p.
func (n *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := n.permX[(i+di)&255] ^ n.permY[(j+dj)&255] ^ n.permZ[(k+dk)&255]
				c[di][dj][dk] = n.vecs[idx]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3.0 - 2.0*u)
	vv := v * v * (3.0 - 2.0*v)
	ww := w * w * (3.0 - 2.0*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-u)) *
					(fj*vv + (1-fj)*(1-v)) *
					(fk*ww + (1-fk)*(1-w)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// Turbulence sums noise across depth octaves, each weight halving and each
// input doubling, and returns the absolute value of the total.
func (n *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * n.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2.0)
	}

	return math.Abs(accum)
}

// PerlinTexture returns 0.5*(1 + sin(scale*p.z + 10*turb(scale*p))) scaled
// by white, a marbled turbulence pattern (spec §4.4).
type PerlinTexture struct {
	Noise *Perlin
	Scale float64
}

// NewPerlinTexture creates a Perlin marble texture at the given scale.
func NewPerlinTexture(rng *rand.Rand, scale float64) *PerlinTexture {
	return &PerlinTexture{Noise: NewPerlin(rng), Scale: scale}
}

// Value evaluates the marble pattern at p, ignoring (u,v).
func (t *PerlinTexture) Value(u, v float64, p core.Vec3) core.Vec4 {
	scaled := p.Multiply(t.Scale)
	intensity := 0.5 * (1.0 + math.Sin(scaled.Z+10.0*t.Noise.Turbulence(scaled, 7)))
	return core.NewVec4(intensity, intensity, intensity)
}
