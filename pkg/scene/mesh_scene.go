package scene

import (
	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/geometry"
	"github.com/loves-go/pathtracer/pkg/loaders"
	"github.com/loves-go/pathtracer/pkg/material"
)

// buildMeshScene is scene_index 6: the Cornell box shell with a triangle
// mesh standing in for a free-standing object, ported from
// original_source/src/scene.hpp's generate_cornell_box_mesh. The original
// loads "assets/mesh/spot.obj" from disk; since no mesh asset ships with
// this module, an octahedron is built directly as loaders.MeshData and
// run through loaders.BuildTriangles, exercising the same mesh-to-
// primitives path the OBJ loader's output would.
func buildMeshScene(aspectRatio float64, rng *core.Rng) *Scene {
	red := material.NewLambertian(core.NewVec4(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec4(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec4(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec4(1, 1, 1))
	metal := material.NewMetal(core.NewVec4(0.70, 0.60, 0.50), 0.0)

	s := cornellBoxSize
	objects := []core.Hittable{
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, s, green),
		geometry.NewAxisAlignedRect(geometry.RectYZ, 0, s, 0, s, 0, red),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 50, 505, 50, 505, 554, light),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, 0, white),
		geometry.NewAxisAlignedRect(geometry.RectXZ, 0, s, 0, s, s, white),
		geometry.NewAxisAlignedRect(geometry.RectXY, 0, s, 0, s, s, white),
	}

	mesh := octahedronMesh(core.NewVec3(275, 200, 275), 90)
	objects = append(objects, loaders.BuildTriangles(mesh, metal)...)

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
		Name:   "mesh_scene",
		root:   geometry.NewBVH(objects),
		solid:  true,
		bottom: core.ColorBlack,
		Camera: cam,
	}
}

// octahedronMesh builds a regular octahedron of the given radius centered
// at center, as a loaders.MeshData, the same shape the mesh-loader
// contract's vertex/index records describe (spec.md §6).
func octahedronMesh(center core.Vec3, radius float64) *loaders.MeshData {
	positions := []core.Vec3{
		center.Add(core.NewVec3(radius, 0, 0)),
		center.Add(core.NewVec3(-radius, 0, 0)),
		center.Add(core.NewVec3(0, radius, 0)),
		center.Add(core.NewVec3(0, -radius, 0)),
		center.Add(core.NewVec3(0, 0, radius)),
		center.Add(core.NewVec3(0, 0, -radius)),
	}

	vertices := make([]loaders.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = loaders.Vertex{Position: p}
	}

	indices := [][3]int{
		{2, 4, 0}, {2, 0, 5}, {2, 5, 1}, {2, 1, 4},
		{3, 0, 4}, {3, 5, 0}, {3, 1, 5}, {3, 4, 1},
	}

	return &loaders.MeshData{Name: "octahedron", Vertices: vertices, Indices: indices}
}
