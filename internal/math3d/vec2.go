package math3d

import "math"

// Vec2 is a 2-component vector. Used for texture coordinates and screen
// positions.
type Vec2 struct {
	X, Y float64
}

// V2 is a shorthand constructor.
func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. Zero-length inputs yield NaN.
func (v Vec2) Normalize() Vec2 {
	inv := 1 / v.Length()
	return Vec2{v.X * inv, v.Y * inv}
}
