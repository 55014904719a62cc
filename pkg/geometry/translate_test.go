package geometry

import (
	"math"
	"testing"

	"github.com/loves-go/pathtracer/pkg/core"
)

// TestTranslate_CommutesWithDirectConstruction verifies testable property
// 5: a sphere at center c and a translate-wrapper of the same sphere at
// origin with offset c produce bit-identical hits.
func TestTranslate_CommutesWithDirectConstruction(t *testing.T) {
	offset := core.NewVec3(10, 0, 0)
	direct := NewSphere(offset, 1.0, dummyMaterial{})
	wrapped := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{}), offset)

	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))

	directHit, directOk := direct.Hit(ray, 0.001, 1000.0)
	wrappedHit, wrappedOk := wrapped.Hit(ray, 0.001, 1000.0)

	if directOk != wrappedOk {
		t.Fatalf("direct hit=%v, wrapped hit=%v", directOk, wrappedOk)
	}
	if directHit.T != wrappedHit.T {
		t.Errorf("expected identical t, got direct=%f wrapped=%f", directHit.T, wrappedHit.T)
	}
	if !directHit.Point.Equals(wrappedHit.Point) {
		t.Errorf("expected identical point, got direct=%v wrapped=%v", directHit.Point, wrappedHit.Point)
	}
	if !directHit.Normal.Equals(wrappedHit.Normal) {
		t.Errorf("expected identical normal, got direct=%v wrapped=%v", directHit.Normal, wrappedHit.Normal)
	}
}

// TestTranslate_Inverse verifies testable property 6:
// translate(translate(x, a), -a) traces identically to x.
func TestTranslate_Inverse(t *testing.T) {
	base := NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{})
	offset := core.NewVec3(3, -2, 7)

	roundTrip := NewTranslate(NewTranslate(base, offset), offset.Negate())

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	baseHit, baseOk := base.Hit(ray, 0.001, 1000.0)
	roundTripHit, roundTripOk := roundTrip.Hit(ray, 0.001, 1000.0)

	if baseOk != roundTripOk {
		t.Fatalf("base hit=%v, round-trip hit=%v", baseOk, roundTripOk)
	}
	if math.Abs(baseHit.T-roundTripHit.T) > 1e-9 {
		t.Errorf("expected matching t, got base=%f roundtrip=%f", baseHit.T, roundTripHit.T)
	}
	if !baseHit.Point.Equals(roundTripHit.Point) {
		t.Errorf("expected matching point, got base=%v roundtrip=%v", baseHit.Point, roundTripHit.Point)
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	offset := core.NewVec3(5, 5, 5)
	wrapped := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1.0, dummyMaterial{}), offset)

	bbox := wrapped.BoundingBox()
	if !bbox.Min.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("expected min (4,4,4), got %v", bbox.Min)
	}
	if !bbox.Max.Equals(core.NewVec3(6, 6, 6)) {
		t.Errorf("expected max (6,6,6), got %v", bbox.Max)
	}
}
