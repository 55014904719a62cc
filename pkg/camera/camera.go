// Package camera generates primary rays for the path tracer.
package camera

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/core"
)

// Config describes the parameters used to derive a Camera's immutable
// basis and viewport. Aperture of 0 disables defocus blur; ShutterOpen and
// ShutterClose equal to each other disables motion blur.
type Config struct {
	Center        core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	Width         int
	AspectRatio   float64
	VFov          float64 // vertical field of view, degrees
	Aperture      float64 // lens diameter; 0 = pinhole
	FocusDistance float64 // 0 = auto, uses |LookAt-Center|
	ShutterOpen   float64
	ShutterClose  float64
}

// Camera is the immutable parameter block spec.md §4.6 describes: an
// orthonormal basis (u,v,w), origin, lower-left corner and horizontal/
// vertical span vectors, plus a lens radius and shutter interval.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera derives the camera basis and viewport from config, per
// spec.md §4.6: w = normalize(eye-at), u = normalize(up×w), v = w×u; the
// viewport has height 2·tan(vfov/2)·focus and width aspect·height.
func NewCamera(config Config) *Camera {
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
		if focusDistance == 0 {
			focusDistance = 1.0
		}
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0) * focusDistance
	viewportWidth := aspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	shutterOpen, shutterClose := config.ShutterOpen, config.ShutterClose
	if shutterClose < shutterOpen {
		shutterClose = shutterOpen
	}

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
		shutterOpen:     shutterOpen,
		shutterClose:    shutterClose,
	}
}

// GetRay generates a ray for normalized screen coordinates (s,t), where
// 0<=s,t<=1, sampling a lens offset and shutter time from rng for defocus
// and motion blur (spec.md §4.6).
func (c *Camera) GetRay(s, t float64, rng *core.Rng) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		lens := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
		offset = c.u.Multiply(lens.X).Add(c.v.Multiply(lens.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time = rng.FloatRange(c.shutterOpen, c.shutterClose)
	}

	return core.NewRayAtTime(origin, direction, time)
}

// Forward returns the camera's viewing direction (opposite of w).
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
