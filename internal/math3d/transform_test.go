package math3d

import (
	"math"
	"testing"
)

func TestMakeTranslateTransform(t *testing.T) {
	got := MakeTranslate3(1, 0, 0).Transform(Vec3{})
	if got != (Vec3{1, 0, 0}) {
		t.Fatalf("got %v", got)
	}
	if MakeTranslate(Vec3{1, 0, 0}) != MakeTranslate3(1, 0, 0) {
		t.Fatalf("MakeTranslate and MakeTranslate3 disagree")
	}
}

func TestMakeScaleTransform(t *testing.T) {
	got := MakeScale3(2, 2, 2).Transform(Vec3{1, 1, 1})
	if got != (Vec3{2, 2, 2}) {
		t.Fatalf("got %v", got)
	}
	if MakeScale(Vec3{2, 3, 4}) != MakeScale3(2, 3, 4) {
		t.Fatalf("MakeScale and MakeScale3 disagree")
	}
}

func TestMakeRotateQuarterTurn(t *testing.T) {
	m := MakeRotate(math.Pi/2, Vec3{0, 0, 1})
	vec3Near(t, m.Transform(Vec3{1, 0, 0}), Vec3{0, 1, 0}, eps)
	vec3Near(t, m.Transform(Vec3{0, 1, 0}), Vec3{-1, 0, 0}, eps)
}

func TestMakeRotateAxisLengthIrrelevant(t *testing.T) {
	a := MakeRotate(0.9, Vec3{0, 0, 1})
	b := MakeRotate(0.9, Vec3{0, 0, 17.5})
	mat4Near(t, a, b, 1e-15)
}

func TestRotateComposesLikeMul(t *testing.T) {
	m := testAffine()
	angle, axis := 0.42, Vec3{1, -1, 2}
	if m.Rotate(angle, axis) != m.MulAffine(MakeRotate(angle, axis)) {
		t.Fatalf("Rotate disagrees with MulAffine(MakeRotate)")
	}
	// translation column untouched
	if m.Rotate(angle, axis).Translation() != m.Translation() {
		t.Fatalf("Rotate moved the translation column")
	}
}

func TestScaleComposesLikeMul(t *testing.T) {
	m := testAffine()
	if m.Scale3(2, -1, 0.5) != m.Mul(MakeScale3(2, -1, 0.5)) {
		t.Fatalf("Scale3 disagrees with Mul(MakeScale3)")
	}
	if m.Scale(Vec3{2, -1, 0.5}) != m.Scale3(2, -1, 0.5) {
		t.Fatalf("Scale and Scale3 disagree")
	}
	if m.Scale3(2, -1, 0.5).Translation() != m.Translation() {
		t.Fatalf("Scale3 moved the translation column")
	}
}

func TestTranslateComposesLikeMul(t *testing.T) {
	m := testAffine()
	if m.Translate3(4, 5, -6) != m.Mul(MakeTranslate3(4, 5, -6)) {
		t.Fatalf("Translate3 disagrees with Mul(MakeTranslate3)")
	}
	if m.Translate(Vec3{4, 5, -6}) != m.Translate3(4, 5, -6) {
		t.Fatalf("Translate and Translate3 disagree")
	}
}

func TestMakeLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := MakeLookAt(eye, Vec3{}, Vec3{0, 1, 0})

	// the eye maps to the origin, the target to -distance on the z axis
	vec3Near(t, view.Transform(eye), Vec3{}, eps)
	vec3Near(t, view.Transform(Vec3{}), Vec3{0, 0, -5}, eps)

	// world +x stays +x for this camera
	vec3Near(t, view.Transform(Vec3{1, 0, 5}), Vec3{1, 0, 0}, eps)
}

func TestMakeLookAtSkewedUp(t *testing.T) {
	// up need not be perpendicular to the view direction; the basis is
	// re-orthonormalized internally
	view := MakeLookAt(Vec3{2, 2, 2}, Vec3{}, Vec3{0.3, 0.8, -0.1})
	inv, err := view.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	mat4Near(t, view.InverseOrthonormal(), inv, 1e-9)
}

func TestMakeBasis(t *testing.T) {
	x := Vec3{0, 1, 0}
	y := Vec3{0, 0, 1}
	z := Vec3{1, 0, 0}
	m := MakeBasis(x, y, z)
	if m.Transform(Vec3{1, 0, 0}) != x {
		t.Fatalf("basis column x misplaced")
	}
	if m.Transform(Vec3{0, 1, 0}) != y || m.Transform(Vec3{0, 0, 1}) != z {
		t.Fatalf("basis columns misplaced")
	}
	if m.Translation() != (Vec3{}) {
		t.Fatalf("basis matrix has nonzero translation")
	}
}

func TestZeroAxisPropagatesNaN(t *testing.T) {
	m := MakeRotate(1, Vec3{})
	if !math.IsNaN(m[0]) {
		t.Fatalf("zero axis should poison the matrix, got %v", m[0])
	}
}
