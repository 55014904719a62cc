package loaders

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/imageio"
	"github.com/loves-go/pathtracer/pkg/material"
)

// LoadImageTexture decodes an image file (PNG/JPEG/BMP/TIFF/HDR, dispatched
// by pkg/imageio) into a material.ImageTexture ready for Value sampling. The
// decode error, if any, is returned unwrapped: a stack-annotated
// pathtracererr value for a missing file or unknown extension, the codec's
// own error otherwise (a plain fmt error for a malformed .hdr file).
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	img, err := imageio.Load(filename)
	if err != nil {
		return nil, err
	}
	img = resampleToSquarePowerOfTwo(img)
	return material.NewImageTexture(img.Width, img.Height, img.Pixels), nil
}

// resampleToSquarePowerOfTwo upsamples a non-square or non-power-of-two
// decoded image to the next power-of-two square, using
// golang.org/x/image/draw's Catmull-Rom scaler, so bilinear sampling in
// material.ImageTexture.Value never undersamples a lopsided source image.
// Already-square-POT images pass through unchanged.
func resampleToSquarePowerOfTwo(img *imageio.Image) *imageio.Image {
	size := nextPowerOfTwo(max(img.Width, img.Height))
	if size == img.Width && size == img.Height {
		return img
	}

	src := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Pixels[y*img.Width+x].Clamp(0, 1)
			i := src.PixOffset(x, y)
			src.Pix[i] = byte(c.R * 255)
			src.Pix[i+1] = byte(c.G * 255)
			src.Pix[i+2] = byte(c.B * 255)
			src.Pix[i+3] = byte(c.A * 255)
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	pixels := make([]core.Vec4, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			pixels[y*size+x] = core.NewVec4A(
				float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0, float64(a)/65535.0,
			)
		}
	}
	return &imageio.Image{Width: size, Height: size, Pixels: pixels}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
