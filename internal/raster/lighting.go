package raster

import (
	"math"

	"mesh3d-renderer/internal/math3d"
)

// Lighting holds the flat-shading parameters. Dir is the light direction in
// world space, pointing from the surface toward the light.
type Lighting struct {
	Dir      math3d.Vec3
	Ambient  float64
	Diffuse  float64
	SpecInt  float64
	SpecPow  float64
	Half     math3d.Vec3 // precomputed Blinn-Phong half vector
	Exposure float64
}

// DefaultLighting returns a key light up and to the right of a camera
// looking down -z, expressed in view space.
func DefaultLighting() Lighting {
	l := Lighting{
		Dir:      math3d.Vec3{X: 0.4, Y: 0.7, Z: 0.6}.Normalize(),
		Ambient:  0.30,
		Diffuse:  0.75,
		SpecInt:  0.25,
		SpecPow:  16,
		Exposure: 1.0,
	}
	l.Half = l.Dir.Add(math3d.Vec3{Z: 1}).Normalize()
	return l
}

// InWorld returns the lighting with Dir and Half rotated by the rigid
// view-to-world matrix, so view-space light definitions follow the camera.
func (l Lighting) InWorld(worldFromView math3d.Mat4) Lighting {
	out := l
	out.Dir = rotateDir(worldFromView, l.Dir)
	out.Half = rotateDir(worldFromView, l.Half)
	return out
}

// Shade returns the lighting scalar for a unit face normal. Lambert term is
// double-sided (abs), so winding order does not matter for flat shading.
func (l Lighting) Shade(normal math3d.Vec3) float64 {
	lambert := math.Abs(normal.Dot(l.Dir))
	ndh := math.Abs(normal.Dot(l.Half))
	spec := math.Pow(ndh, l.SpecPow) * l.SpecInt
	return (l.Ambient + lambert*l.Diffuse + spec) * l.Exposure
}

// rotateDir applies only the 3×3 block of m, for direction vectors that
// must ignore translation.
func rotateDir(m math3d.Mat4, v math3d.Vec3) math3d.Vec3 {
	return math3d.Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}
