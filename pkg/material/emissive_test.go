package material

import (
	"testing"

	"github.com/loves-go/pathtracer/pkg/core"
)

func TestEmissive_NeverScatters(t *testing.T) {
	emissions := []core.Vec4{
		core.NewVec4(1, 0, 0),
		core.NewVec4(1, 1, 1),
		core.NewVec4(0, 0, 0),
		core.NewVec4(10, 5, 2),
	}

	for _, emission := range emissions {
		emissive := NewEmissive(emission)
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
		hit := core.HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0), T: 1.0}
		rng := core.NewRng(42, 0)

		_, scattered := emissive.Scatter(ray, hit, rng)
		if scattered {
			t.Errorf("emissive material with emission %v should not scatter rays", emission)
		}
	}
}

func TestEmissive_EmittedMatchesConstructor(t *testing.T) {
	emission := core.NewVec4(10, 5, 2)
	emissive := NewEmissive(emission)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := core.HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0), T: 1.0}

	emitted := emissive.Emitted(ray, hit)
	if !emitted.Vec3().Equals(emission.Vec3()) {
		t.Errorf("expected emitted %v, got %v", emission, emitted)
	}
}

func TestEmissive_InterfaceCompliance(t *testing.T) {
	var _ core.Material = NewEmissive(core.NewVec4(1, 1, 1))
}
