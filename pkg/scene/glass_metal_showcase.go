package scene

import (
	"math"

	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/material"
)

// buildGlassMetalShowcase is scene_index 5: the Cornell box shell with two
// rotated boxes (one diffuse, one metal), a glass sphere, and an orange
// metal triangle "cone" made of four faces, ported from
// original_source/src/scene.hpp's generate_cornell_box_transformed. It
// exercises geometry.Rotate alongside the instance transforms the plain
// Cornell box (scene_index 4) doesn't use.
func buildGlassMetalShowcase(aspectRatio float64, rng *core.Rng) *Scene {
	red := material.NewLambertian(core.NewVec4(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec4(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec4(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec4(1, 1, 1))
	glass := material.NewDielectric(1.4)
	metal := material.NewMetal(core.NewVec4(0.70, 0.60, 0.50), 0.0)
	orange := material.NewMetal(core.NewVec4(0.80, 0.40, 0.20), 0.2)

	s := cornellBoxSize
	objects := []core.Hittable{
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, s, green),
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, 0, red),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 50, 505, 50, 505, 554, light),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, 0, white),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, s, white),
		geometry.NewAxisAlignedRect(geometry.RectXY, 0, s, 0, s, s, white),
	}

	leftBox := geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)
	rightBox := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), metal)
	glassSphere := geometry.NewSphere(core.NewVec3(180, 280, 180), 80, glass)

	rotationLeft := core.NewQuaternionFromAxisAngle(core.NewVec3(1, 0, 1), degToRad(30))
	rotationRight := core.NewQuaternionFromAxisAngle(core.NewVec3(1, 1, 0), degToRad(45))

	objects = append(objects,
		geometry.NewRotate(leftBox, rotationLeft),
		geometry.NewRotate(rightBox, rotationRight),
		glassSphere,
	)

	cone := [4]core.Vec3{
		core.NewVec3(550, 0, 200),
		core.NewVec3(350, 0, 200),
		core.NewVec3(450, 0, 0),
		core.NewVec3(450, 200, 50),
	}
	objects = append(objects,
		geometry.NewTriangle(cone[0], cone[2], cone[3], orange),
		geometry.NewTriangle(cone[1], cone[3], cone[2], orange),
		geometry.NewTriangle(cone[0], cone[3], cone[1], orange),
		geometry.NewTriangle(cone[0], cone[1], cone[2], orange),
	)

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
		Name:   "glass_metal_showcase",
		root:   geometry.NewBVH(objects),
		solid:  true,
		bottom: core.ColorBlack,
		Camera: cam,
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
