package math3d

import "math"

// Projection defaults shared by every pipeline built on Projection.
const (
	DefaultNear = 0.1
	DefaultFOV  = 90.0 // degrees
)

// Mat4 is a 4x4 matrix stored in row-major order and applied to row
// vectors: v' = v · M. The translation lives in the bottom row.
//
// | Xx Xy Xz 0 |   X,Y,Z = basis vectors (rotation/scale)
// | Yx Yy Yz 0 |   T = translation
// | Zx Zy Zz 0 |
// | Tx Ty Tz 1 |
//
// The zero value is the all-zero matrix, not the identity.
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[1][1] = c
	m[1][2] = s
	m[2][1] = -s
	m[2][2] = c
	return m
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[0][0] = c
	m[0][1] = s
	m[1][0] = -s
	m[1][1] = c
	return m
}

// Perspective creates a left-handed perspective projection matrix.
// fovDeg is the field of view in degrees, aspect is height/width.
// After the perspective divide depth maps near to 0 and far to 1.
func Perspective(fovDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovDeg*0.5*math.Pi/180)

	var m Mat4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = far / (far - near)
	m[3][2] = -far * near / (far - near)
	m[2][3] = 1
	m[3][3] = 0
	return m
}

// Projection creates the viewport projection matrix with the default
// near plane and field of view.
func Projection(width, height, far float64) Mat4 {
	return Perspective(DefaultFOV, height/width, DefaultNear, far)
}

// Mul multiplies two matrices. Applying the result is equivalent to
// applying a first and then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row][k] * b[k][col]
			}
			m[row][col] = sum
		}
	}
	return m
}

// MulVec transforms v as a point (w=1) and applies the perspective divide.
// The divide is skipped when the resulting w is zero.
func (m Mat4) MulVec(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 1)).PerspectiveDivide()
}

// MulVec4 transforms a homogeneous vector without dividing.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for row := range 4 {
		for col := range 4 {
			t[col][row] = m[row][col]
		}
	}
	return t
}
