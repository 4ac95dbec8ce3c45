package math3d

import "math"

// Vec4 is a 4-component vector, used for homogeneous coordinates and RGBA
// color arithmetic.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a shorthand constructor.
func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }

func (v Vec4) Scale(s float64) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Normalize returns v scaled to unit length. Zero-length inputs yield NaN.
func (v Vec4) Normalize() Vec4 {
	inv := 1 / v.Length()
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }
