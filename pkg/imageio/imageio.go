// Package imageio is the decode/encode facade for texture and output
// images: PNG/JPEG/BMP/TIFF via disintegration/imaging, and a hand-written
// Radiance RGBE (.hdr) codec for high dynamic range output.
package imageio

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/framebuffer"
	"github.com/loves-go/pathtracer/pkg/pathtracererr"
)

// PostProcess transforms a completed framebuffer before it is tonemapped
// and written out, the seam original_source/src/image.hpp's
// bilateral_filtering plugs into. No filter ships here (denoising is out
// of scope); IdentityPostProcess is the driver's default.
type PostProcess func(*framebuffer.Framebuffer) *framebuffer.Framebuffer

// IdentityPostProcess returns fb unchanged.
func IdentityPostProcess(fb *framebuffer.Framebuffer) *framebuffer.Framebuffer {
	return fb
}

// Image is a decoded pixel buffer in row-major order, top-left origin.
type Image struct {
	Width, Height int
	Pixels        []core.Vec4
}

// ldrExtensions is the extension allow-list for the imaging codecs. .tga
// passes this check, but imaging has no TGA codec, so Load and Save of a
// .tga file return imaging's unsupported-format error.
var ldrExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".tga": true, ".tif": true, ".tiff": true}

// Load decodes an image file, dispatching by extension. PNG, JPEG, BMP and
// TIFF go through disintegration/imaging's format auto-detection; HDR uses
// the local RGBE decoder (no pack library performs Radiance HDR decoding).
func Load(filename string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".hdr" {
		return loadHDR(filename)
	}
	if !ldrExtensions[ext] {
		return nil, pathtracererr.ErrUnsupportedExtension(filename)
	}
	return loadLDR(filename)
}

func loadLDR(filename string) (*Image, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, pathtracererr.ErrMissingFile(filename, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec4, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec4A(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
				float64(a)/65535.0,
			)
		}
	}
	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

// Save encodes img to filename, dispatching by extension. PNG/JPEG/BMP/
// TIFF go through disintegration/imaging; HDR uses the local RGBE encoder.
func Save(filename string, img *Image) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".hdr" {
		return saveHDR(filename, img)
	}
	if !ldrExtensions[ext] {
		return pathtracererr.ErrUnsupportedExtension(filename)
	}
	return saveLDR(filename, img)
}

func saveLDR(filename string, img *Image) error {
	nrgba := imaging.New(img.Width, img.Height, color.Transparent)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Pixels[y*img.Width+x].Clamp(0, 1)
			i := nrgba.PixOffset(x, y)
			nrgba.Pix[i] = byte(c.R * 255)
			nrgba.Pix[i+1] = byte(c.G * 255)
			nrgba.Pix[i+2] = byte(c.B * 255)
			nrgba.Pix[i+3] = byte(c.A * 255)
		}
	}

	// .bmp goes through golang.org/x/image/bmp directly rather than
	// imaging.Save's dispatch: x/image/bmp's encoder is a straight
	// uncompressed-scanline writer with no quality/format ambiguity to
	// configure, so there is nothing imaging's wrapper adds here.
	if strings.ToLower(filepath.Ext(filename)) == ".bmp" {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		return bmp.Encode(f, nrgba)
	}

	return imaging.Save(nrgba, filename)
}

