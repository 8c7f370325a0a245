package pcview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is a 3D homogeneous transformation stored as an mgl64.Mat4,
// column-major: element (row, col) is m[col*4+row] and the translation
// lives in m[12], m[13], m[14]. Points are column vectors.
type Matrix4 mgl64.Mat4

// Identity4 returns the identity transformation matrix.
func Identity4() Matrix4 {
	return Matrix4(mgl64.Ident4())
}

// Translate4 creates a translation matrix.
func Translate4(t Vec3) Matrix4 {
	return Matrix4(mgl64.Translate3D(t.X, t.Y, t.Z))
}

// RotationMatrix builds the rotation block from a quaternion.
// The quaternion is normalized first.
func RotationMatrix(q Quat) Matrix4 {
	return Matrix4(mgl64.Quat(q.Normalize()).Mat4())
}

// TransformMatrix combines a rotation and a translation:
// points are rotated about the origin, then moved by t.
func TransformMatrix(q Quat, t Vec3) Matrix4 {
	return Translate4(t).Multiply(RotationMatrix(q))
}

// At returns the element at row, col.
func (m Matrix4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}

// SetTranslation sets the translation column.
func (m *Matrix4) SetTranslation(t Vec3) {
	(*mgl64.Mat4)(m).SetCol(3, t.mgl().Vec4(1))
}

// Translation returns the translation column.
func (m Matrix4) Translation() Vec3 {
	return fromMgl(mgl64.Mat4(m).Col(3).Vec3())
}

// Multiply multiplies two matrices (m * other).
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	return Matrix4(mgl64.Mat4(m).Mul4(mgl64.Mat4(other)))
}

// TransformPoint applies the transformation to a point.
// The homogeneous coordinate is divided out.
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	return fromMgl(mgl64.TransformCoordinate(p.mgl(), mgl64.Mat4(m)))
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix4) TransformVector(v Vec3) Vec3 {
	return fromMgl(mgl64.TransformNormal(v.mgl(), mgl64.Mat4(m)))
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// Approx returns true if all elements are within epsilon.
func (m Matrix4) Approx(other Matrix4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) >= epsilon {
			return false
		}
	}
	return true
}

// Transpose returns the transpose of m. For a pure rotation this is its
// inverse.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4(mgl64.Mat4(m).Transpose())
}
