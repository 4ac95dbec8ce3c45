package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"mesh3d-renderer/internal/camera"
	"mesh3d-renderer/internal/math3d"
	"mesh3d-renderer/internal/obj"
)

// Renderer renders a mesh through the full model/view/projection pipeline
// into an NRGBA image.
type Renderer struct {
	Size        int // output edge length, pixels (square)
	Supersample int // render at Size*Supersample, caller downsamples
	Wireframe   bool
	Background  color.NRGBA
	FaceColor   color.NRGBA // used when no texture or UVs are available
	Tex         *image.NRGBA
	Light       Lighting
}

// Render draws mesh under the given model matrix and camera. Fails only if
// the model matrix is singular (its inverse transpose is needed to carry
// normals to world space for shading).
func (r Renderer) Render(mesh obj.Mesh, model math3d.Mat4, cam camera.Camera) (*image.NRGBA, error) {
	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	size := r.Size * ss
	fb := NewFrameBuffer(size, size)
	fb.Clear(r.Background)

	inv, err := model.Inverse()
	if err != nil {
		return nil, fmt.Errorf("raster: model matrix not invertible: %w", err)
	}
	normalMat := inv.Transpose()

	light := r.Light.InWorld(cam.WorldFromView())
	mvp := cam.ViewProjection(1).Mul(model)

	// project all vertices to screen space once
	verts := make([]ScreenVert, len(mesh.Verts))
	ok := make([]bool, len(mesh.Verts))
	half := float64(size) / 2
	for i, v := range mesh.Verts {
		ndc := mvp.Transform(v)
		if math.IsNaN(ndc.X) || math.IsInf(ndc.X, 0) ||
			math.IsNaN(ndc.Y) || math.IsInf(ndc.Y, 0) ||
			ndc.Z < -1 || ndc.Z > 1 {
			continue
		}
		verts[i] = ScreenVert{
			X: (ndc.X + 1) * half,
			Y: (1 - ndc.Y) * half,
			Z: ndc.Z,
		}
		ok[i] = true
	}

	faceCol := r.FaceColor
	if faceCol.A == 0 {
		faceCol = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	}

	for _, f := range mesh.Faces {
		if !ok[f.V[0]] || !ok[f.V[1]] || !ok[f.V[2]] {
			continue
		}

		sv := [3]ScreenVert{verts[f.V[0]], verts[f.V[1]], verts[f.V[2]]}
		for i := 0; i < 3; i++ {
			if f.UV[i] >= 0 && f.UV[i] < len(mesh.UVs) {
				sv[i].U = mesh.UVs[f.UV[i]].X
				sv[i].V = mesh.UVs[f.UV[i]].Y
				sv[i].HasUV = true
			}
		}

		if r.Wireframe {
			DrawLine(fb, sv[0], sv[1], faceCol)
			DrawLine(fb, sv[1], sv[2], faceCol)
			DrawLine(fb, sv[2], sv[0], faceCol)
			continue
		}

		// flat shading from the world-space face normal
		a, b, c := mesh.Verts[f.V[0]], mesh.Verts[f.V[1]], mesh.Verts[f.V[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() < 1e-12 {
			continue
		}
		worldN := rotateDir(normalMat, n).Normalize()
		shade := light.Shade(worldN)

		FillTriangle(fb, sv[0], sv[1], sv[2], r.Tex, shade, faceCol)
	}

	return fb.Image(), nil
}

// FitTransform returns the model matrix that centers the box [min, max] at
// the origin and scales it uniformly so its largest extent is 2*radius.
// Scale applied after translation; both factors are affine so MulAffine
// composes them.
func FitTransform(min, max math3d.Vec3, radius float64) math3d.Mat4 {
	center := min.Add(max).Scale(0.5)
	ext := max.Sub(min)
	largest := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	if largest <= 0 {
		largest = 1
	}
	s := 2 * radius / largest
	return math3d.MakeScale3(s, s, s).MulAffine(math3d.MakeTranslate(center.Neg()))
}
