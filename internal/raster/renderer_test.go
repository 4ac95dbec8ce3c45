package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"mesh3d-renderer/internal/camera"
	"mesh3d-renderer/internal/math3d"
	"mesh3d-renderer/internal/obj"
)

func quadMesh() obj.Mesh {
	return obj.Mesh{
		Verts: []math3d.Vec3{
			{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
		},
		UVs: []math3d.Vec2{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Faces: []obj.Face{
			{V: [3]int{0, 1, 2}, UV: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}, UV: [3]int{0, 2, 3}},
		},
	}
}

func opaquePixels(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRenderFillsCenter(t *testing.T) {
	r := Renderer{Size: 64, Light: DefaultLighting()}
	cam := camera.Orbit(0, 0, 5, math3d.Vec3{})
	img, err := r.Render(quadMesh(), math3d.Identity(), cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	// the quad faces the camera head-on: the center pixel must be covered
	if img.NRGBAAt(32, 32).A == 0 {
		t.Fatal("center pixel not covered")
	}
	if opaquePixels(img) == 0 {
		t.Fatal("nothing rendered")
	}
}

func TestRenderSupersample(t *testing.T) {
	r := Renderer{Size: 32, Supersample: 2, Light: DefaultLighting()}
	cam := camera.Orbit(0, 0, 5, math3d.Vec3{})
	img, err := r.Render(quadMesh(), math3d.Identity(), cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Fatalf("supersampled bounds %v, want 64", img.Bounds())
	}
}

func TestRenderSingularModel(t *testing.T) {
	r := Renderer{Size: 16, Light: DefaultLighting()}
	cam := camera.Orbit(0, 0, 5, math3d.Vec3{})
	if _, err := r.Render(quadMesh(), math3d.MakeScale3(0, 1, 1), cam); err == nil {
		t.Fatal("flattening scale should be rejected as singular")
	}
}

func TestRenderWireframeSparser(t *testing.T) {
	cam := camera.Orbit(20, 20, 5, math3d.Vec3{})
	solid := Renderer{Size: 64, Light: DefaultLighting()}
	wire := Renderer{Size: 64, Wireframe: true, Light: DefaultLighting()}

	sImg, err := solid.Render(quadMesh(), math3d.Identity(), cam)
	if err != nil {
		t.Fatalf("solid: %v", err)
	}
	wImg, err := wire.Render(quadMesh(), math3d.Identity(), cam)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	if ws, ss := opaquePixels(wImg), opaquePixels(sImg); ws == 0 || ws >= ss {
		t.Fatalf("wireframe coverage %d should be nonzero and below solid %d", ws, ss)
	}
}

func TestRenderTextured(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i] = 255 // pure red
		tex.Pix[i+3] = 255
	}
	r := Renderer{Size: 32, Tex: tex, Light: DefaultLighting()}
	cam := camera.Orbit(0, 0, 5, math3d.Vec3{})
	img, err := r.Render(quadMesh(), math3d.Identity(), cam)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	c := img.NRGBAAt(16, 16)
	if c.A == 0 || c.R == 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("textured center pixel = %+v, want shaded red", c)
	}
}

func TestFitTransform(t *testing.T) {
	min := math3d.Vec3{X: 2, Y: 2, Z: 2}
	max := math3d.Vec3{X: 6, Y: 4, Z: 3}
	m := FitTransform(min, max, 1)

	// the box center lands on the origin
	center := min.Add(max).Scale(0.5)
	got := m.Transform(center)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 || math.Abs(got.Z) > 1e-12 {
		t.Fatalf("center maps to %v", got)
	}

	// the largest extent (x: 4 units) spans exactly [-1, 1]
	lo := m.Transform(math3d.Vec3{X: 2, Y: 3, Z: 2.5})
	hi := m.Transform(math3d.Vec3{X: 6, Y: 3, Z: 2.5})
	if math.Abs(lo.X+1) > 1e-12 || math.Abs(hi.X-1) > 1e-12 {
		t.Fatalf("x extent maps to [%v, %v]", lo.X, hi.X)
	}
}

func TestLightingShadeRange(t *testing.T) {
	l := DefaultLighting()
	head := l.Shade(l.Dir)         // facing the light
	side := l.Shade(math3d.Vec3{}.Sub(l.Dir).Cross(math3d.Vec3{Y: 1}).Normalize())
	if head <= side {
		t.Fatalf("light-facing shade %v should exceed grazing shade %v", head, side)
	}
	if l.Shade(l.Dir.Neg()) != head {
		t.Fatal("shading should be double-sided")
	}
}

func TestDrawLineBounds(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	// endpoints far outside the buffer must not panic
	DrawLine(fb, ScreenVert{X: -100, Y: -100}, ScreenVert{X: 100, Y: 100}, color.NRGBA{R: 255, A: 255})
	if fb.Color[(4*8+4)*4+3] == 0 {
		t.Fatal("diagonal line should cross the center")
	}
}

func TestSampleTextureCorners(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex.SetNRGBA(0, 1, color.NRGBA{R: 255, A: 255}) // u=0,v=0 after flip
	r, _, _, a := SampleTexture(tex, 0, 0)
	if r != 255 || a != 255 {
		t.Fatalf("corner sample = %d,%d", r, a)
	}
}
