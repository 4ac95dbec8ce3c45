package math3d

import "math"

// Projection constructors. All are closed-form with no failure mode:
// degenerate bounds (near == far, left == right, ...) divide by zero and
// yield Inf/NaN entries rather than an error.

// MakeFrustum returns an asymmetric perspective projection matrix for the
// view volume bounded by left/right/bottom/top at the near plane.
func MakeFrustum(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 * near / rl, 0, 0, 0,
		0, 2 * near / tb, 0, 0,
		(right + left) / rl, (top + bottom) / tb, -(far + near) / fn, -1,
		0, 0, -2 * far * near / fn, 0,
	}
}

// MakePerspective returns a symmetric perspective projection. fovy is the
// vertical field of view in degrees, aspect is width/height.
func MakePerspective(fovy, aspect, near, far float64) Mat4 {
	top := near * math.Tan(fovy*math.Pi/360)
	right := top * aspect
	return MakeFrustum(-right, right, -top, top, near, far)
}

// MakeOrtho returns an orthographic projection matrix.
func MakeOrtho(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// MakeOrtho2D returns an orthographic projection with the near and far
// planes fixed at -1 and 1.
func MakeOrtho2D(left, right, bottom, top float64) Mat4 {
	return MakeOrtho(left, right, bottom, top, -1, 1)
}
