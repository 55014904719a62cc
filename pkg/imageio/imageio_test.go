package imageio

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/loves-go/pathtracer/pkg/core"
)

func TestLoad_PNG_RoundTripsColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(1, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Width != 2 || loaded.Height != 1 {
		t.Fatalf("expected 2x1, got %dx%d", loaded.Width, loaded.Height)
	}

	red := loaded.Pixels[0]
	if red.R < 0.99 || red.G > 0.01 || red.B > 0.01 {
		t.Errorf("expected red at pixel 0, got %v", red)
	}
}

func TestSaveLDR_ThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	original := &Image{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec4{
			core.NewVec4(1, 0, 0),
			core.NewVec4(0, 1, 0),
			core.NewVec4(0, 0, 1),
			core.NewVec4(1, 1, 1),
		},
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Width != 2 || loaded.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", loaded.Width, loaded.Height)
	}
}

func TestHDR_SaveThenLoad_RoundTripsWithinToleranceOfShared8BitMantissa(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.hdr")

	original := &Image{
		Width:  3,
		Height: 2,
		Pixels: []core.Vec4{
			core.NewVec4(1.0, 2.0, 0.5),
			core.NewVec4(0.1, 0.1, 0.1),
			core.NewVec4(10.0, 0.0, 0.0),
			core.NewVec4(0, 0, 0),
			core.NewVec4(100.0, 50.0, 25.0),
			core.NewVec4(0.001, 0.002, 0.003),
		},
	}

	if err := saveHDR(path, original); err != nil {
		t.Fatalf("saveHDR failed: %v", err)
	}

	loaded, err := loadHDR(path)
	if err != nil {
		t.Fatalf("loadHDR failed: %v", err)
	}
	if loaded.Width != original.Width || loaded.Height != original.Height {
		t.Fatalf("expected %dx%d, got %dx%d", original.Width, original.Height, loaded.Width, loaded.Height)
	}

	for i, want := range original.Pixels {
		got := loaded.Pixels[i]
		// RGBE has ~1/256 relative precision per channel.
		const relTol = 0.01
		for _, pair := range [][2]float64{{want.R, got.R}, {want.G, got.G}, {want.B, got.B}} {
			w, g := pair[0], pair[1]
			if w == 0 {
				if g != 0 {
					t.Errorf("pixel %d: expected exact zero, got %f", i, g)
				}
				continue
			}
			if math.Abs(g-w)/w > relTol {
				t.Errorf("pixel %d: expected ~%f, got %f", i, w, g)
			}
		}
	}
}

func TestLoad_NonexistentFile_Errors(t *testing.T) {
	if _, err := Load("does-not-exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load("does-not-exist.hdr"); err == nil {
		t.Error("expected error for missing HDR file")
	}
}
