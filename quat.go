package pcview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a rotation quaternion W + V, stored as an mgl64.Quat.
// Mul composes rotations so that a.Mul(b) applied to a vector rotates by
// b first, then by a.
type Quat mgl64.Quat

// IdentityQuat returns the quaternion representing no rotation.
func IdentityQuat() Quat {
	return Quat(mgl64.QuatIdent())
}

// QuatFromAxisAngle returns the rotation of angle radians about axis.
// The axis is normalized; a zero axis yields the identity rotation.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	if axis.IsZero() {
		return IdentityQuat()
	}
	return Quat(mgl64.QuatRotate(angle, axis.mgl()))
}

// QuatFromAxisDegrees is QuatFromAxisAngle with the angle in degrees.
func QuatFromAxisDegrees(axis Vec3, degrees float64) Quat {
	return QuatFromAxisAngle(axis, mgl64.DegToRad(degrees))
}

// Mul returns the Hamilton product q * r.
func (q Quat) Mul(r Quat) Quat {
	return Quat(mgl64.Quat(q).Mul(mgl64.Quat(r)))
}

// Norm returns the quaternion magnitude.
func (q Quat) Norm() float64 {
	return mgl64.Quat(q).Len()
}

// Normalize returns q scaled to unit length.
// Returns the identity if q has zero length.
func (q Quat) Normalize() Quat {
	return Quat(mgl64.Quat(q).Normalize())
}

// Conjugate returns the conjugate of q, the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat(mgl64.Quat(q).Conjugate())
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return fromMgl(mgl64.Quat(q).Rotate(v.mgl()))
}

// Approx returns true if two quaternions are approximately equal within epsilon.
func (q Quat) Approx(r Quat, epsilon float64) bool {
	return math.Abs(q.W-r.W) < epsilon &&
		math.Abs(q.V[0]-r.V[0]) < epsilon &&
		math.Abs(q.V[1]-r.V[1]) < epsilon &&
		math.Abs(q.V[2]-r.V[2]) < epsilon
}
