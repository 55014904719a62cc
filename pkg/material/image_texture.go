package material

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// ImageTexture samples a bilinearly-filtered 2D image, clamping to the
// edge rather than wrapping (spec §4.4).
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Vec4 // row-major, Pixels[y*Width+x]
}

// NewImageTexture wraps a decoded RGBA pixel buffer as a texture.
func NewImageTexture(width, height int, pixels []core.Vec4) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Value bilinearly samples the image at (u,v), where v=0 is the bottom of
// the image per the texture-space convention and the image buffer's row 0
// is its top row.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec4 {
	if t.Width <= 0 || t.Height <= 0 {
		return core.ColorBlack
	}

	u = core.Clamp(u, 0, 1)
	v = 1.0 - core.Clamp(v, 0, 1)

	x := u * float64(t.Width-1)
	y := v * float64(t.Height-1)

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := clampInt(x0+1, 0, t.Width-1)
	y1 := clampInt(y0+1, 0, t.Height-1)
	x0 = clampInt(x0, 0, t.Width-1)
	y0 = clampInt(y0, 0, t.Height-1)

	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := t.at(x0, y0)
	c10 := t.at(x1, y0)
	c01 := t.at(x0, y1)
	c11 := t.at(x1, y1)

	top := lerpVec4(c00, c10, fx)
	bottom := lerpVec4(c01, c11, fx)
	return lerpVec4(top, bottom, fy)
}

func (t *ImageTexture) at(x, y int) core.Vec4 {
	return t.Pixels[y*t.Width+x]
}

func lerpVec4(a, b core.Vec4, t float64) core.Vec4 {
	return core.NewVec4A(
		lerpFloat(a.R, b.R, t),
		lerpFloat(a.G, b.G, t),
		lerpFloat(a.B, b.B, t),
		lerpFloat(a.A, b.A, t),
	)
}

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
