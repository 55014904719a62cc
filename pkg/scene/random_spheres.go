package scene

import (
	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/material"
)

// buildRandomSpheres is scene_index 0: a checkered ground plane and a
// field of small random-material spheres around three feature spheres,
// ported from original_source/src/scene.hpp's generate_random_scene.
// This is the scene testable property D (BVH vs list parity) exercises.
func buildRandomSpheres(aspectRatio float64, rng *core.Rng) *Scene {
	objects := make([]core.Hittable, 0, 500)

	checker := material.NewCheckerTexture(1.0, core.NewVec4(0.2, 0.3, 0.1), core.NewVec4(0.9, 0.9, 0.9))
	ground := material.NewLambertianTexture(checker)
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := rng.Float64()
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case choice < 0.8:
				r, g, b := oklchToRGB(0.6+0.2*rng.Float64(), 0.05+0.2*rng.Float64(), rng.Float64()*360.0)
				mat = material.NewLambertian(core.NewVec4(r, g, b))
			case choice < 0.95:
				albedo := randomColor(rng).Multiply(0.5).Add(core.NewVec4(0.5, 0.5, 0.5))
				mat = material.NewMetal(albedo, rng.FloatRange(0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, geometry.NewSphere(center, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	brown := material.NewLambertian(core.NewVec4(0.4, 0.2, 0.1))
	steel := material.NewMetal(core.NewVec4(0.7, 0.6, 0.5), 0.0)

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, brown),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, steel),
	)

	cam := camera.NewCamera(camera.Config{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	})

	return &Scene{
		Name:   "random_spheres",
		root:   geometry.NewBVH(objects),
		top:    skyTop,
		bottom: skyBottom,
		Camera: cam,
	}
}

// randomColor draws a random Vec4 with components uniform in [0,1) and
// alpha fixed at 1, used by buildRandomSpheres' albedo sampling.
func randomColor(rng *core.Rng) core.Vec4 {
	return core.NewVec4(rng.Float64(), rng.Float64(), rng.Float64())
}
