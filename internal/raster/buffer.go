package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	W, H  int
	Color []uint8   // NRGBA interleaved, len = W*H*4
	Depth []float64 // NDC depth per pixel, +Inf = empty, smaller is nearer
}

// NewFrameBuffer allocates a transparent color buffer and a +Inf depth
// buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		W:     w,
		H:     h,
		Color: make([]uint8, n*4),
		Depth: depth,
	}
}

// Clear fills the color buffer with c, leaving depth untouched.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.W, fb.H))
	copy(img.Pix, fb.Color)
	return img
}
