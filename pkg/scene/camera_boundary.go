package scene

import (
	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/material"
)

// buildCameraBoundary is scene_index 1: a small fixed scene of
// overlapping/nested spheres and three edge-on emissive triangles framing
// the shot, ported from original_source/src/scene.hpp's
// generate_simple_scene. It is small and deterministic enough to serve
// as the reference scene for testable property F (tiled vs single-tile
// parity).
func buildCameraBoundary(aspectRatio float64, rng *core.Rng) *Scene {
	objects := make([]core.Hittable, 0, 8)

	ground := material.NewLambertian(core.NewVec4(0.5, 0.5, 0.5))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := material.NewDielectric(1.5)
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(0, 1, 0), -0.9, glass), // hollow shell, inverted normal
		geometry.NewSphere(core.NewVec3(-2, 1, 2), 1.0, glass),
		geometry.NewSphere(core.NewVec3(2, 1, 2), 1.0, glass),
	)

	light := material.NewEmissive(core.NewVec4(1, 1, 1))
	objects = append(objects,
		geometry.NewTriangle(core.NewVec3(-3, 0, -2), core.NewVec3(0, 4, -2), core.NewVec3(3, 0, -2), light),
		geometry.NewTriangle(core.NewVec3(-4, 0, 0), core.NewVec3(-4, 4, 0), core.NewVec3(-4, 0, 4), light),
		geometry.NewTriangle(core.NewVec3(4, 0, 0), core.NewVec3(4, 4, 0), core.NewVec3(4, 0, 4), light),
	)

	cam := camera.NewCamera(camera.Config{
		Center:        core.NewVec3(0, 4, 6),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
	})

	return &Scene{
		Name:   "camera_boundary",
		root:   geometry.NewBVH(objects),
		top:    skyTop,
		bottom: skyBottom,
		Camera: cam,
	}
}
