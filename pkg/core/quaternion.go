package core

import "math"

// Quaternion is a unit quaternion (x,y,z,w) used to implement the Rotate
// instance transform (spec §4.3). Ported from
// mrigankad-gorenderengine/math/quaternion.go, widened to float64.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternionFromAxisAngle builds a unit quaternion rotating by angle
// radians around axis (which need not be normalized).
func NewQuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	axis = axis.Normalize()
	half := angle * 0.5
	s := math.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}.Normalize()
}

// NewQuaternionFromEuler builds a quaternion from X-Y-Z euler angles in radians.
func NewQuaternionFromEuler(x, y, z float64) Quaternion {
	qx := NewQuaternionFromAxisAngle(NewVec3(1, 0, 0), x)
	qy := NewQuaternionFromAxisAngle(NewVec3(0, 1, 0), y)
	qz := NewQuaternionFromAxisAngle(NewVec3(0, 0, 1), z)
	return qz.Mul(qy).Mul(qx)
}

// Mul composes two rotations: q.Mul(other) applies other first, then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Length returns the quaternion's magnitude.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit quaternion in the same orientation.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return Quaternion{W: 1}
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Conjugate returns the quaternion's conjugate (x,y,z negated).
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse rotation. For a unit quaternion this equals
// the conjugate.
func (q Quaternion) Inverse() Quaternion {
	lenSq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if lenSq == 0 {
		return Quaternion{W: 1}
	}
	c := q.Conjugate()
	return Quaternion{X: c.X / lenSq, Y: c.Y / lenSq, Z: c.Z / lenSq, W: c.W / lenSq}
}

// RotateVec3 rotates v by this quaternion.
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	qv := Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := q.Mul(qv).Mul(q.Conjugate())
	return NewVec3(r.X, r.Y, r.Z)
}
