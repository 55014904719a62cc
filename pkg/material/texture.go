package material

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// SolidTexture returns a constant color regardless of (u,v,p) (spec §4.4).
type SolidTexture struct {
	Color core.Vec4
}

// NewSolidTexture creates a texture that always evaluates to color.
func NewSolidTexture(color core.Vec4) *SolidTexture {
	return &SolidTexture{Color: color}
}

// Value returns the solid color.
func (s *SolidTexture) Value(u, v float64, p core.Vec3) core.Vec4 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 2D grid over (u,v)
// scaled by a fixed number of cells per unit (spec §4.4).
type CheckerTexture struct {
	Scale float64
	Even  core.Texture
	Odd   core.Texture
}

// NewCheckerTexture creates a uv-space checker pattern with the given
// number of cells per unit and two solid colors.
func NewCheckerTexture(scale float64, even, odd core.Vec4) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: NewSolidTexture(even), Odd: NewSolidTexture(odd)}
}

// NewCheckerTextureFrom creates a checker pattern from two arbitrary
// textures.
func NewCheckerTextureFrom(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: even, Odd: odd}
}

// Value implements x = floor(u*scale), y = floor(v*scale); odd parity
// selects the odd texture.
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec4 {
	x := int(math.Floor(u * c.Scale))
	y := int(math.Floor(v * c.Scale))

	if (x+y)%2 != 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
