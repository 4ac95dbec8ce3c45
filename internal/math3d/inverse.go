package math3d

// adjugate returns the transpose of the cofactor matrix, computed by direct
// closed-form expansion of the sixteen 3×3 minors. Dividing by the
// determinant yields the inverse.
func (m Mat4) adjugate() Mat4 {
	var a Mat4

	a[0] = m[5]*(m[10]*m[15]-m[14]*m[11]) - m[9]*(m[6]*m[15]-m[14]*m[7]) + m[13]*(m[6]*m[11]-m[10]*m[7])
	a[1] = -(m[1]*(m[10]*m[15]-m[14]*m[11]) - m[9]*(m[2]*m[15]-m[14]*m[3]) + m[13]*(m[2]*m[11]-m[10]*m[3]))
	a[2] = m[1]*(m[6]*m[15]-m[14]*m[7]) - m[5]*(m[2]*m[15]-m[14]*m[3]) + m[13]*(m[2]*m[7]-m[6]*m[3])
	a[3] = -(m[1]*(m[6]*m[11]-m[10]*m[7]) - m[5]*(m[2]*m[11]-m[10]*m[3]) + m[9]*(m[2]*m[7]-m[6]*m[3]))

	a[4] = -(m[4]*(m[10]*m[15]-m[14]*m[11]) - m[8]*(m[6]*m[15]-m[14]*m[7]) + m[12]*(m[6]*m[11]-m[10]*m[7]))
	a[5] = m[0]*(m[10]*m[15]-m[14]*m[11]) - m[8]*(m[2]*m[15]-m[14]*m[3]) + m[12]*(m[2]*m[11]-m[10]*m[3])
	a[6] = -(m[0]*(m[6]*m[15]-m[14]*m[7]) - m[4]*(m[2]*m[15]-m[14]*m[3]) + m[12]*(m[2]*m[7]-m[6]*m[3]))
	a[7] = m[0]*(m[6]*m[11]-m[10]*m[7]) - m[4]*(m[2]*m[11]-m[10]*m[3]) + m[8]*(m[2]*m[7]-m[6]*m[3])

	a[8] = m[4]*(m[9]*m[15]-m[13]*m[11]) - m[8]*(m[5]*m[15]-m[13]*m[7]) + m[12]*(m[5]*m[11]-m[9]*m[7])
	a[9] = -(m[0]*(m[9]*m[15]-m[13]*m[11]) - m[8]*(m[1]*m[15]-m[13]*m[3]) + m[12]*(m[1]*m[11]-m[9]*m[3]))
	a[10] = m[0]*(m[5]*m[15]-m[13]*m[7]) - m[4]*(m[1]*m[15]-m[13]*m[3]) + m[12]*(m[1]*m[7]-m[5]*m[3])
	a[11] = -(m[0]*(m[5]*m[11]-m[9]*m[7]) - m[4]*(m[1]*m[11]-m[9]*m[3]) + m[8]*(m[1]*m[7]-m[5]*m[3]))

	a[12] = -(m[4]*(m[9]*m[14]-m[13]*m[10]) - m[8]*(m[5]*m[14]-m[13]*m[6]) + m[12]*(m[5]*m[10]-m[9]*m[6]))
	a[13] = m[0]*(m[9]*m[14]-m[13]*m[10]) - m[8]*(m[1]*m[14]-m[13]*m[2]) + m[12]*(m[1]*m[10]-m[9]*m[2])
	a[14] = -(m[0]*(m[5]*m[14]-m[13]*m[6]) - m[4]*(m[1]*m[14]-m[13]*m[2]) + m[12]*(m[1]*m[6]-m[5]*m[2]))
	a[15] = m[0]*(m[5]*m[10]-m[9]*m[6]) - m[4]*(m[1]*m[10]-m[9]*m[2]) + m[8]*(m[1]*m[6]-m[5]*m[2])

	return a
}

// Determinant returns det(m), computed as the dot product of m's first
// column with the first row of the adjugate (Laplace expansion along the
// first column).
func (m Mat4) Determinant() float64 {
	a := m.adjugate()
	return m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12]
}

// Inverse returns the inverse of m, or ErrSingular if the determinant is
// exactly zero. The determinant check is exact: a near-singular matrix with
// a tiny but nonzero determinant still inverts, producing a valid but
// numerically unstable result rather than an error.
func (m Mat4) Inverse() (Mat4, error) {
	a := m.adjugate()
	det := m[0]*a[0] + m[1]*a[4] + m[2]*a[8] + m[3]*a[12]
	if det == 0 {
		return Mat4{}, ErrSingular
	}
	inv := 1 / det
	for i := range a {
		a[i] *= inv
	}
	return a, nil
}

// InverseOrthonormal inverts m assuming its 3×3 block is orthonormal (a pure
// rotation) and the matrix is affine: the rotation inverts by transposition
// and the translation becomes its negation expressed in the rotated basis.
// Much cheaper than Inverse and never fails, but the precondition is not
// checked — a non-orthonormal input produces a silently wrong result.
func (m Mat4) InverseOrthonormal() Mat4 {
	r := m.Transpose()
	t := Vec3{m[12], m[13], m[14]}
	r[3] = 0
	r[7] = 0
	r[11] = 0
	r[12] = -(t.X*m[0] + t.Y*m[1] + t.Z*m[2])
	r[13] = -(t.X*m[4] + t.Y*m[5] + t.Z*m[6])
	r[14] = -(t.X*m[8] + t.Y*m[9] + t.Z*m[10])
	r[15] = 1
	return r
}
