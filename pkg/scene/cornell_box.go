package scene

import (
	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/material"
)

// cornellBoxSize is the classic 555-unit cube original_source/src/scene.hpp
// builds the Cornell box from.
const cornellBoxSize = 555.0

// buildCornellBox is scene_index 4: the classic Cornell box (red/green
// side walls, white everything else, a ceiling light, two boxes),
// ported directly from original_source/src/scene.hpp's
// generate_cornell_box. This is the reference scene testable property C
// checks against a recorded pixel value, so its geometry and camera
// match the original verbatim rather than being paraphrased.
func buildCornellBox(aspectRatio float64, rng *core.Rng) *Scene {
	red := material.NewLambertian(core.NewVec4(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec4(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec4(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec4(15, 15, 15))

	s := cornellBoxSize
	objects := []core.Hittable{
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, s, green),
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, 0, red),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 200, 355, 200, 355, 554, light),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, 0, white),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, s, white),
		geometry.NewAxisAlignedRect(geometry.RectXY, 0, s, 0, s, s, white),
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
	}

	cam := camera.NewCamera(camera.Config{
		Center:        core.NewVec3(278, 278, -750),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0,
		VFov:          40.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	})

	return &Scene{
		Name:   "cornell_box",
		root:   geometry.NewBVH(objects),
		solid:  true,
		bottom: core.ColorBlack,
		Camera: cam,
	}
}
