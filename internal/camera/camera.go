package camera

import (
	"math"

	"mesh3d-renderer/internal/math3d"
)

// Camera describes the viewpoint and projection for a render.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3

	FOV  float64 // vertical field of view, degrees
	Near float64
	Far  float64

	// Ortho switches to an orthographic projection with a symmetric
	// view volume of half-height OrthoScale.
	Ortho      bool
	OrthoScale float64
}

// Orbit places a camera on a sphere around center: yaw degrees around the
// world Y axis, pitch degrees above the horizon, at the given distance.
func Orbit(yawDeg, pitchDeg, dist float64, center math3d.Vec3) Camera {
	yaw := math3d.MakeRotate(deg2rad(yawDeg), math3d.Vec3{Y: 1})
	// pitch rotates around the camera's right axis, which after yaw is the
	// rotated world X axis
	right := yaw.Transform(math3d.Vec3{X: 1})
	pitch := math3d.MakeRotate(deg2rad(-pitchDeg), right)

	offset := pitch.Transform(yaw.Transform(math3d.Vec3{Z: dist}))
	return Camera{
		Eye:    center.Add(offset),
		Center: center,
		Up:     math3d.Vec3{Y: 1},
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the world-to-view matrix.
func (c Camera) View() math3d.Mat4 {
	return math3d.MakeLookAt(c.Eye, c.Center, c.Up)
}

// Projection returns the view-to-clip matrix for the given aspect ratio
// (width/height).
func (c Camera) Projection(aspect float64) math3d.Mat4 {
	if c.Ortho {
		s := c.OrthoScale
		if s <= 0 {
			s = 1
		}
		return math3d.MakeOrtho(-s*aspect, s*aspect, -s, s, c.Near, c.Far)
	}
	return math3d.MakePerspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns Projection · View.
func (c Camera) ViewProjection(aspect float64) math3d.Mat4 {
	return c.Projection(aspect).Mul(c.View())
}

// WorldFromView returns the view-to-world matrix. Valid because View() is a
// rigid transform, so the cheap orthonormal inverse applies.
func (c Camera) WorldFromView() math3d.Mat4 {
	return c.View().InverseOrthonormal()
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
