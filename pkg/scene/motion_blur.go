package scene

import (
	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/material"
)

// buildMotionBlur is scene_index 2: a field of diffuse spheres that drift
// upward over the shutter interval, landing on MovingSphere and the
// camera's ShutterOpen/ShutterClose instead of a single static pose.
// original_source/src/scene.hpp's generate_random_scene carries this
// exact construction commented out
// (`world.add(make_shared<Geometry::MovingSphere>(...))`); this scene
// builder is that path, enabled and given its own camera.
func buildMotionBlur(aspectRatio float64, rng *core.Rng) *Scene {
	objects := make([]core.Hittable, 0, 100)

	ground := material.NewLambertian(core.NewVec4(0.5, 0.5, 0.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}
			albedo := randomColor(rng).MultiplyVec(randomColor(rng))
			mat := material.NewLambertian(albedo)
			centerEnd := center.Add(core.NewVec3(0, rng.FloatRange(0, 0.5), 0))
			objects = append(objects, geometry.NewMovingSphere(center, centerEnd, 0.0, 1.0, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))

	cam := camera.NewCamera(camera.Config{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	})

	return &Scene{
		Name:   "motion_blur",
		root:   geometry.NewBVH(objects),
		top:    skyTop,
		bottom: skyBottom,
		Camera: cam,
	}
}
