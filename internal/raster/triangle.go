package raster

import (
	"image"
	"image/color"
	"math"
)

// ScreenVert is a projected vertex: screen-space x/y, NDC depth z, and
// texture coordinates (valid only when HasUV).
type ScreenVert struct {
	X, Y, Z float64
	U, V    float64
	HasUV   bool
}

// FillTriangle rasterizes one flat-shaded triangle with a z-buffer test and
// optional bilinear texture sampling.
//
// This is the hot path; the pixel loop does not allocate.
func FillTriangle(fb *FrameBuffer, v0, v1, v2 ScreenVert, tex *image.NRGBA, shade float64, base color.NRGBA) {
	x0, y0, z0 := v0.X, v0.Y, v0.Z
	x1, y1, z1 := v1.X, v1.Y, v1.Z
	x2, y2, z2 := v2.X, v2.Y, v2.Z

	hasUV := tex != nil && v0.HasUV && v1.HasUV && v2.HasUV

	// bounding box clamped to the framebuffer
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.W {
		maxX = fb.W - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.H {
		maxY = fb.H - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.W
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z >= fb.Depth[zIdx] {
				continue
			}

			cr, cg, cb, ca := base.R, base.G, base.B, base.A
			if hasUV {
				u := w0*v0.U + w1*v1.U + w2*v2.U
				v := w0*v0.V + w1*v1.V + w2*v2.V
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}
			if ca < 8 {
				continue
			}
			fb.Depth[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = shade8(cr, shade)
			fb.Color[pxIdx+1] = shade8(cg, shade)
			fb.Color[pxIdx+2] = shade8(cb, shade)
			fb.Color[pxIdx+3] = ca
		}
	}
}

// DrawLine draws a depth-tested line between two projected vertices
// (Bresenham over the major axis, with interpolated z).
func DrawLine(fb *FrameBuffer, a, b ScreenVert, c color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(a.X + dx*t)
		y := int(a.Y + dy*t)
		if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
			continue
		}
		z := a.Z + (b.Z-a.Z)*t
		zIdx := y*fb.W + x
		// slight bias so wires win ties against the faces they outline
		if z-1e-6 >= fb.Depth[zIdx] {
			continue
		}
		fb.Depth[zIdx] = z
		pxIdx := zIdx * 4
		fb.Color[pxIdx] = c.R
		fb.Color[pxIdx+1] = c.G
		fb.Color[pxIdx+2] = c.B
		fb.Color[pxIdx+3] = c.A
	}
}

func shade8(v uint8, shade float64) uint8 {
	s := float64(v) * shade
	if s > 255 {
		return 255
	}
	if s < 0 {
		return 0
	}
	return uint8(s + 0.5)
}
