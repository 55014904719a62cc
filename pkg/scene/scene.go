// Package scene provides the seven hard-coded scene builders selected by
// configuration's scene_index (spec §6). Scene construction is an explicit
// Non-goal of the core renderer's scope, so this package is a thin glue
// layer: each builder wires primitives and materials from pkg/geometry and
// pkg/material into a BVH, picks a camera, and exposes both through the
// integrator.Scene interface the driver consumes.
package scene

import (
	"fmt"

	"github.com/loves-go/pathtracer/pkg/camera"
	"github.com/loves-go/pathtracer/pkg/core"
	"github.com/loves-go/pathtracer/pkg/integrator"
)

// Scene bundles an accelerated hittable root, a background, and the
// camera that renders it, implementing integrator.Scene.
type Scene struct {
	root        core.Hittable
	solid       bool
	top, bottom core.Vec4
	Camera      *camera.Camera
	Name        string
}

// Root returns the scene's top-level hittable, normally a BVH root.
func (s *Scene) Root() core.Hittable { return s.root }

// Background evaluates the scene's sky: a solid color, or the vertical
// gradient sky spec.md §4.7 describes.
func (s *Scene) Background(ray core.Ray) core.Vec4 {
	if s.solid {
		return s.bottom
	}
	return integrator.GradientSky(ray, s.top, s.bottom)
}

var skyTop = core.NewVec4(0.5, 0.7, 1.0)
var skyBottom = core.ColorWhite

// builders maps scene_index to its constructor, in the order spec.md §6
// enumerates (scene_index ∈ {0..6}).
var builders = []func(aspectRatio float64, rng *core.Rng) *Scene{
	buildRandomSpheres,
	buildCameraBoundary,
	buildMotionBlur,
	buildTextureShowcase,
	buildCornellBox,
	buildGlassMetalShowcase,
	buildMeshScene,
}

// New constructs the scene at scene_index for the given aspect ratio. rng
// seeds any scene-local randomness (e.g. the random-spheres field); nil
// uses a fixed internal seed so the scene stays deterministic across runs.
func New(sceneIndex int, aspectRatio float64, rng *core.Rng) (*Scene, error) {
	if sceneIndex < 0 || sceneIndex >= len(builders) {
		return nil, fmt.Errorf("scene: scene_index %d out of range [0,%d]", sceneIndex, len(builders)-1)
	}
	if rng == nil {
		rng = core.NewRng(0, 0)
	}
	return builders[sceneIndex](aspectRatio, rng), nil
}

// Count returns the number of available scene builders.
func Count() int { return len(builders) }
