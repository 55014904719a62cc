package imageio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Radiance RGBE (.hdr) decode/encode, hand-written because no library in
// the retrieved pack (or its transitive dependencies) performs Radiance
// HDR encoding/decoding. The format is a short ASCII header followed by a
// flat, uncompressed run of 4-byte-per-pixel (R,G,B,E) scanlines — simple
// enough to port by hand from original_source's stbi_write_hdr/stbi_loadf
// usage (image.hpp's save()/load()) without vendoring stb itself. This
// implementation always writes (and only reads) the uncompressed variant,
// skipping RLE scanline compression.

func loadHDR(filename string) (*Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to open %s: %w", filename, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	if err := skipHDRHeader(reader); err != nil {
		return nil, fmt.Errorf("imageio: invalid HDR header in %s: %w", filename, err)
	}

	width, height, err := readHDRResolution(reader)
	if err != nil {
		return nil, fmt.Errorf("imageio: invalid HDR resolution line in %s: %w", filename, err)
	}

	pixels := make([]core.Vec4, width*height)
	scanline := make([]byte, width*4)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(reader, scanline); err != nil {
			return nil, fmt.Errorf("imageio: truncated HDR scanline %d in %s: %w", y, filename, err)
		}
		for x := 0; x < width; x++ {
			r, g, b, e := scanline[x*4], scanline[x*4+1], scanline[x*4+2], scanline[x*4+3]
			pixels[y*width+x] = rgbeToVec4(r, g, b, e)
		}
	}

	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

func saveHDR(filename string, img *Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("imageio: failed to create %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", img.Height, img.Width)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Pixels[y*img.Width+x]
			r, g, b, e := vec4ToRGBE(c)
			w.Write([]byte{r, g, b, e})
		}
	}

	return w.Flush()
}

// rgbeToVec4 decodes a single shared-exponent radiance pixel into linear
// floating-point color, per the classic Ward RGBE format.
func rgbeToVec4(r, g, b, e byte) core.Vec4 {
	if e == 0 {
		return core.ColorBlack
	}
	scale := math.Ldexp(1.0, int(e)-(128+8))
	return core.NewVec4(
		float64(r)*scale,
		float64(g)*scale,
		float64(b)*scale,
	)
}

// vec4ToRGBE encodes a linear color into the shared-exponent representation.
func vec4ToRGBE(c core.Vec4) (byte, byte, byte, byte) {
	maxComponent := math.Max(c.R, math.Max(c.G, c.B))
	if maxComponent < 1e-32 {
		return 0, 0, 0, 0
	}

	mantissa, exp := math.Frexp(maxComponent)
	scale := mantissa * 256.0 / maxComponent

	clampByte := func(v float64) byte {
		iv := int(v*scale + 0.5)
		if iv < 0 {
			return 0
		}
		if iv > 255 {
			return 255
		}
		return byte(iv)
	}

	return clampByte(c.R), clampByte(c.G), clampByte(c.B), byte(exp + 128)
}

func skipHDRHeader(r *bufio.Reader) error {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}
	}
}

func readHDRResolution(r *bufio.Reader) (width, height int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	// expected form: "-Y <height> +X <width>"
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("unexpected resolution line %q", line)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	width, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
