package core

import (
	"math"
	"testing"
)

func TestRandomUnitVector_IsUnitLength(t *testing.T) {
	rng := NewRng(42, 0)

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("RandomUnitVector not unit length: %f", v.Length())
		}
	}
}

func TestRandomInUnitSphere_BoundedLength(t *testing.T) {
	rng := NewRng(7, 1)

	for i := 0; i < 1000; i++ {
		v := RandomInUnitSphere(rng)
		if v.LengthSquared() >= 1 {
			t.Fatalf("RandomInUnitSphere returned point outside unit sphere: %v", v)
		}
	}
}

func TestRandomInUnitDisk_ZPlane(t *testing.T) {
	rng := NewRng(7, 2)

	for i := 0; i < 1000; i++ {
		v := RandomInUnitDisk(rng)
		if v.Z != 0 {
			t.Fatalf("RandomInUnitDisk returned non-zero Z: %v", v)
		}
		if v.LengthSquared() >= 1 {
			t.Fatalf("RandomInUnitDisk returned point outside unit disk: %v", v)
		}
	}
}

func TestVec3_BasicArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if !a.Add(b).Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add mismatch")
	}
	if !b.Subtract(a).Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract mismatch")
	}
	if a.Dot(b) != 32 {
		t.Errorf("Dot mismatch: got %f", a.Dot(b))
	}
	if !a.Cross(b).Equals(NewVec3(-3, 6, -3)) {
		t.Errorf("Cross mismatch: got %v", a.Cross(b))
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if !(Vec3{}).Normalize().Equals(Vec3{}) {
		t.Errorf("Normalize of zero vector should return zero vector")
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := v.Reflect(n)
	if !r.Equals(NewVec3(1, 1, 0)) {
		t.Errorf("Reflect mismatch: got %v", r)
	}
}

func TestQuaternion_RoundTrip(t *testing.T) {
	q := NewQuaternionFromAxisAngle(NewVec3(0, 1, 0), math.Pi/2)
	v := NewVec3(1, 0, 0)

	rotated := q.RotateVec3(v)
	back := q.Inverse().RotateVec3(rotated)

	if back.Subtract(v).Length() > 1e-9 {
		t.Errorf("quaternion round trip mismatch: got %v want %v", back, v)
	}
}
