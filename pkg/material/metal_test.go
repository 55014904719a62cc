package material

import (
	"testing"

	"github.com/loves-go/pathtracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec4(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec4(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	rng := core.NewRng(42, 0)

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	result, didScatter := metal.Scatter(rayIn, hit, rng)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := result.Scattered.Direction.Normalize()

	const tolerance = 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if !result.Attenuation.Vec3().Equals(albedo.Vec3()) {
		t.Errorf("attenuation should equal albedo: expected %v, got %v", albedo, result.Attenuation)
	}
}

func TestMetal_FuzzyReflection_ProducesVariation(t *testing.T) {
	albedo := core.NewVec4(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.5)
	rng := core.NewRng(42, 0)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	directions := make([]core.Vec3, 10)
	for i := 0; i < 10; i++ {
		result, didScatter := metal.Scatter(rayIn, hit, rng)
		if !didScatter {
			t.Fatalf("metal should scatter on iteration %d", i)
		}
		directions[i] = result.Scattered.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec4(0.8, 0.8, 0.8), 1.0)
	rng := core.NewRng(123, 0)

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorptionCount, scatterCount := 0, 0
	for i := 0; i < 1000; i++ {
		_, didScatter := metal.Scatter(rayIn, hit, rng)
		if didScatter {
			scatterCount++
		} else {
			absorptionCount++
		}
	}

	if absorptionCount == 0 {
		t.Error("expected some rays to be absorbed with high fuzz at grazing angle")
	}
	if scatterCount == 0 {
		t.Error("expected some rays to be scattered")
	}
}

func TestMetal_Emitted_IsZero(t *testing.T) {
	metal := NewMetal(core.NewVec4(1, 1, 1), 0)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	if !metal.Emitted(ray, hit).IsZero() {
		t.Error("expected zero emission")
	}
}
