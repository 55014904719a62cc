package camera

import (
	"math"
	"testing"

	"github.com/loves-go/pathtracer/pkg/core"
)

func canonicalConfig() Config {
	return Config{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
}

func TestCamera_Forward(t *testing.T) {
	c := NewCamera(canonicalConfig())
	forward := c.Forward()
	expected := core.NewVec3(0, 0, -1)

	if math.Abs(forward.X-expected.X) > 1e-9 ||
		math.Abs(forward.Y-expected.Y) > 1e-9 ||
		math.Abs(forward.Z-expected.Z) > 1e-9 {
		t.Errorf("expected forward %v, got %v", expected, forward)
	}
}

// TestCamera_PixelBoundaries is testable property 8: with aperture=0, pixel
// centers (0.5/W,0.5/H) and (1-0.5/W,1-0.5/H) map to rays whose directions
// agree with hand-computed values for the canonical camera.
func TestCamera_PixelBoundaries(t *testing.T) {
	config := canonicalConfig()
	c := NewCamera(config)
	rng := core.NewRng(1, 0)

	W, H := float64(config.Width), float64(config.Width)

	// vfov=90, focus=1 => viewport height = 2*tan(45deg)*1 = 2; width = 2
	// (aspect=1). lowerLeftCorner = (-1,-1,-1), horizontal=(2,0,0),
	// vertical=(0,2,0).
	s0, t0 := 0.5/W, 0.5/H
	ray0 := c.GetRay(s0, t0, rng)
	expected0 := core.NewVec3(-1+2*s0, -1+2*t0, -1)
	if !ray0.Direction.Equals(expected0) {
		t.Errorf("bottom-left pixel: expected direction %v, got %v", expected0, ray0.Direction)
	}

	s1, t1 := 1-0.5/W, 1-0.5/H
	ray1 := c.GetRay(s1, t1, rng)
	expected1 := core.NewVec3(-1+2*s1, -1+2*t1, -1)
	if !ray1.Direction.Equals(expected1) {
		t.Errorf("top-right pixel: expected direction %v, got %v", expected1, ray1.Direction)
	}
}

func TestCamera_NoAperture_OriginIsFixed(t *testing.T) {
	c := NewCamera(canonicalConfig())
	rng := core.NewRng(2, 0)

	for i := 0; i < 20; i++ {
		ray := c.GetRay(0.5, 0.5, rng)
		if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
			t.Errorf("expected fixed origin with zero aperture, got %v", ray.Origin)
		}
	}
}

func TestCamera_Aperture_JitterStaysWithinLensRadius(t *testing.T) {
	config := canonicalConfig()
	config.Aperture = 0.5
	c := NewCamera(config)
	rng := core.NewRng(3, 0)

	for i := 0; i < 100; i++ {
		ray := c.GetRay(0.5, 0.5, rng)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > config.Aperture/2.0+1e-9 {
			t.Errorf("lens offset %v exceeds lens radius %f", offset, config.Aperture/2.0)
		}
	}
}

func TestCamera_ShutterInterval_BoundsRayTime(t *testing.T) {
	config := canonicalConfig()
	config.ShutterOpen = 0.0
	config.ShutterClose = 1.0
	c := NewCamera(config)
	rng := core.NewRng(4, 0)

	for i := 0; i < 100; i++ {
		ray := c.GetRay(0.5, 0.5, rng)
		if ray.Time < 0.0 || ray.Time > 1.0 {
			t.Errorf("ray time %f out of shutter interval [0,1]", ray.Time)
		}
	}
}

func TestCamera_NoShutterInterval_TimeIsConstant(t *testing.T) {
	c := NewCamera(canonicalConfig())
	rng := core.NewRng(5, 0)

	ray := c.GetRay(0.5, 0.5, rng)
	if ray.Time != 0.0 {
		t.Errorf("expected zero time with no shutter interval, got %f", ray.Time)
	}
}
