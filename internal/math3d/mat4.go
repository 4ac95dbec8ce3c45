package math3d

import "errors"

// Mat4 is a 4×4 matrix stored in column-major order, matching the layout
// GPU APIs expect for a 16-float uniform upload.
//
// Memory layout (indices):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// For an affine transform the first three columns are the basis vectors
// (rotation/scale), indices 12–14 hold the translation and the fourth row
// is (0, 0, 0, 1).
//
// Mat4 is a plain value: every operation returns a new matrix and no
// operation mutates its receiver or arguments. Equality is structural over
// all 16 scalars with no tolerance; callers needing approximate comparison
// must bring their own epsilon.
type Mat4 [16]float64

// ErrInvalidLength is returned by FromSlice for slices whose length is not 16.
var ErrInvalidLength = errors.New("math3d: matrix slice must have 16 elements")

// ErrSingular is returned by Inverse for matrices whose determinant is
// exactly zero.
var ErrSingular = errors.New("math3d: matrix is singular")

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromSlice builds a matrix from exactly 16 scalars in column-major order.
// Any other length returns ErrInvalidLength and the zero matrix.
func FromSlice(s []float64) (Mat4, error) {
	if len(s) != 16 {
		return Mat4{}, ErrInvalidLength
	}
	var m Mat4
	copy(m[:], s)
	return m, nil
}

// ToSlice returns the 16 scalars in column-major order as a fresh slice.
func (m Mat4) ToSlice() []float64 {
	s := make([]float64, 16)
	copy(s, m[:])
	return s
}

// Mul returns the matrix product a × b (full 4×4, 64 multiply-adds).
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col*4+row] = a[row]*b[col*4] + a[4+row]*b[col*4+1] +
				a[8+row]*b[col*4+2] + a[12+row]*b[col*4+3]
		}
	}
	return m
}

// MulAffine returns a × b computed under the assumption that both inputs are
// affine (fourth row exactly (0,0,0,1)). Only the 3×4 affine part is
// multiplied and the result's fourth row is hard-coded. If either input is
// not affine the result is silently wrong; the precondition is the caller's
// to uphold.
func (a Mat4) MulAffine(b Mat4) Mat4 {
	var m Mat4
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col*4+row] = a[row]*b[col*4] + a[4+row]*b[col*4+1] + a[8+row]*b[col*4+2]
		}
	}
	for row := 0; row < 3; row++ {
		m[12+row] = a[row]*b[12] + a[4+row]*b[13] + a[8+row]*b[14] + a[12+row]
	}
	m[15] = 1
	return m
}

// Transform applies m to the point v in homogeneous coordinates and performs
// the perspective divide: w = v·(m14,m24,m34) + m44, each output component is
// (v·row + translation) / w. Affine matrices have w = 1 and pass points
// through undistorted; projection matrices get a true perspective divide.
// A w of zero divides through per IEEE semantics and yields Inf/NaN.
func (m Mat4) Transform(v Vec3) Vec3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	return Vec3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) / w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) / w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) / w,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Translation extracts the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
