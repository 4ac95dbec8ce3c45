package math3d

import "math"

// MakeRotate returns a rotation of angle radians about axis, via Rodrigues'
// rotation formula. The axis is normalized internally, so its length does
// not matter — except that a zero axis normalizes to NaN and poisons the
// whole matrix.
func MakeRotate(angle float64, axis Vec3) Mat4 {
	a := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Rotate right-multiplies a rotation of angle radians about axis into the
// 3×3 block of m. The translation column and the fourth row pass through
// unchanged.
func (m Mat4) Rotate(angle float64, axis Vec3) Mat4 {
	r := MakeRotate(angle, axis)
	out := m
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*4+row] = m[row]*r[col*4] + m[4+row]*r[col*4+1] + m[8+row]*r[col*4+2]
		}
	}
	return out
}

// MakeScale3 returns a diagonal scale matrix.
func MakeScale3(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// MakeScale returns a diagonal scale matrix from a vector.
func MakeScale(v Vec3) Mat4 {
	return MakeScale3(v.X, v.Y, v.Z)
}

// Scale3 post-scales m's first three columns by x, y, z. The translation
// column is untouched. Equivalent to m.Mul(MakeScale3(x, y, z)).
func (m Mat4) Scale3(x, y, z float64) Mat4 {
	out := m
	for row := 0; row < 4; row++ {
		out[row] *= x
		out[4+row] *= y
		out[8+row] *= z
	}
	return out
}

// Scale post-scales m's first three columns by v's components.
func (m Mat4) Scale(v Vec3) Mat4 {
	return m.Scale3(v.X, v.Y, v.Z)
}

// MakeTranslate3 returns a translation matrix.
func MakeTranslate3(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// MakeTranslate returns a translation matrix from a vector.
func MakeTranslate(v Vec3) Mat4 {
	return MakeTranslate3(v.X, v.Y, v.Z)
}

// Translate3 post-composes a translation by (x, y, z): the new translation
// column is m's 3×3 block applied to the offset plus the old translation.
// Equivalent to m.Mul(MakeTranslate3(x, y, z)).
func (m Mat4) Translate3(x, y, z float64) Mat4 {
	out := m
	out[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	out[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	out[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	out[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return out
}

// Translate post-composes a translation by v.
func (m Mat4) Translate(v Vec3) Mat4 {
	return m.Translate3(v.X, v.Y, v.Z)
}

// MakeLookAt returns a view matrix for a camera at eye looking toward
// center, with up suggesting the vertical. The basis is orthonormalized:
// forward = normalize(center-eye), right = normalize(forward×up),
// up is recomputed as right×forward. eye == center or an up parallel to the
// view direction degenerates to NaN entries.
func MakeLookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// MakeBasis returns the change-of-basis matrix whose columns are x, y and z,
// with zero translation. The vectors are assumed linearly independent; this
// is not checked.
func MakeBasis(x, y, z Vec3) Mat4 {
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}
