package material

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Dielectric is a perfectly clear refractive material such as glass or
// water (spec §4.5). Attenuation is always white; the material never
// absorbs light.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter either reflects or refracts the incoming ray, choosing
// probabilistically between the two using the Schlick reflectance
// approximation whenever refraction is geometrically possible.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.Rng) (core.ScatterResult, bool) {
	attenuation := core.ColorWhite

	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	} else {
		eta = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, eta) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, eta)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return core.ScatterResult{Attenuation: attenuation, Scattered: scattered}, true
}

// Emitted returns zero; dielectrics don't emit light.
func (d *Dielectric) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec4 {
	return core.ColorBlack
}

// refract applies Snell's law to a unit incident vector uv about normal n
// with ratio etaiOverEtat = eta_incident / eta_transmitted.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance computes the Schlick approximation of the Fresnel
// reflectance: r0 = ((1-eta)/(1+eta))^2, R = r0 + (1-r0)(1-cosTheta)^5.
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
