// Package framebuffer holds the accumulating float pixel buffer the
// tiled driver writes into and the tonemap that turns it into displayable
// bytes.
package framebuffer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/loves-go/pathtracer/pkg/core"
)

const channels = 4 // R,G,B,A

// Framebuffer is a row-major float pixel buffer with a top-left-origin
// accessor, ported from original_source/src/image.hpp's Image class (which
// stores bottom-up and flips on access; this buffer stores top-down
// directly so the driver's scanline order matches storage order).
type Framebuffer struct {
	Width, Height int
	data          []float64
}

// New allocates a zeroed framebuffer of the given dimensions.
func New(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		data:   make([]float64, width*height*channels),
	}
}

func (f *Framebuffer) index(x, y int) int {
	return (y*f.Width + x) * channels
}

// Set writes a color at pixel (x,y), y=0 at the top row.
func (f *Framebuffer) Set(x, y int, c core.Vec4) {
	i := f.index(x, y)
	f.data[i] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = c.A
}

// At reads the color at pixel (x,y).
func (f *Framebuffer) At(x, y int) core.Vec4 {
	i := f.index(x, y)
	return core.NewVec4A(f.data[i], f.data[i+1], f.data[i+2], f.data[i+3])
}

// Accumulate adds a sample into the running average at (x,y) for the
// n-th of N total samples (n is 1-based: the n-th sample contributes
// 1/n of the delta from the current average).
func (f *Framebuffer) Accumulate(x, y int, sample core.Vec4, n int) {
	prev := f.At(x, y)
	weight := 1.0 / float64(n)
	blended := core.NewVec4A(
		prev.R+(sample.R-prev.R)*weight,
		prev.G+(sample.G-prev.G)*weight,
		prev.B+(sample.B-prev.B)*weight,
		1.0,
	)
	f.Set(x, y, blended)
}

// ToneMap converts the linear-radiance buffer to gamma-corrected 8-bit
// RGBA bytes (row-major, top-left origin), clamping out-of-range samples.
// Uses go-colorful's LinearRgb for the sRGB transfer function rather than
// a hand-rolled math.Pow(x, 1/2.2) table.
func (f *Framebuffer) ToneMap() []byte {
	out := make([]byte, f.Width*f.Height*channels)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y).Clamp(0, 1)
			gamma := colorful.LinearRgb(c.R, c.G, c.B)
			r, g, b := gamma.RGB255()

			i := f.index(x, y)
			out[i] = r
			out[i+1] = g
			out[i+2] = b
			out[i+3] = byte(core.Clamp(c.A, 0, 1) * 255)
		}
	}
	return out
}
