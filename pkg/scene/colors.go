package scene

import "math"

// oklchToRGB converts OKLCH color coordinates (lightness, chroma, hue in
// degrees) into linear RGB, used by buildRandomSpheres to spread its
// diffuse sphere field across perceptually even hues instead of raw RGB
// products. Adapted from the teacher's sphere-grid scene builder, which
// used the same conversion for a grid of metallic spheres.
func oklchToRGB(l, c, hueDegrees float64) (r, g, b float64) {
	hRad := hueDegrees * math.Pi / 180.0
	a := c * math.Cos(hRad)
	bComp := c * math.Sin(hRad)

	l_ := l + 0.3963377774*a + 0.2158037573*bComp
	m_ := l - 0.1055613458*a - 0.0638541728*bComp
	s_ := l - 0.0894841775*a - 1.2914855480*bComp

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	r = +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g = -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	b = -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	b = math.Max(0, math.Min(1, b))
	return r, g, b
}
