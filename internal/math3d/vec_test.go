package math3d

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-3, 0, 5)
	if a.Add(b) != (Vec3{-2, 2, 8}) {
		t.Fatalf("Add: %v", a.Add(b))
	}
	if a.Sub(b) != (Vec3{4, 2, -2}) {
		t.Fatalf("Sub: %v", a.Sub(b))
	}
	if a.Scale(2) != (Vec3{2, 4, 6}) {
		t.Fatalf("Scale: %v", a.Scale(2))
	}
	if a.Neg() != (Vec3{-1, -2, -3}) {
		t.Fatalf("Neg: %v", a.Neg())
	}
	if a.Dot(b) != 12 {
		t.Fatalf("Dot: %v", a.Dot(b))
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if x.Cross(y) != (Vec3{0, 0, 1}) {
		t.Fatalf("x×y = %v", x.Cross(y))
	}
	if y.Cross(x) != (Vec3{0, 0, -1}) {
		t.Fatalf("y×x = %v", y.Cross(x))
	}
	a := V3(2, -1, 3)
	if a.Cross(a) != (Vec3{}) {
		t.Fatalf("a×a = %v", a.Cross(a))
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0)
	if v.Length() != 5 {
		t.Fatalf("Length: %v", v.Length())
	}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > eps {
		t.Fatalf("normalized length: %v", n.Length())
	}

	// no zero guard: NaN propagates by contract
	z := Vec3{}.Normalize()
	if !math.IsNaN(z.X) || !math.IsNaN(z.Y) || !math.IsNaN(z.Z) {
		t.Fatalf("zero normalize should be NaN, got %v", z)
	}
}

func TestVec2Ops(t *testing.T) {
	a := V2(3, 4)
	if a.Length() != 5 {
		t.Fatalf("Length: %v", a.Length())
	}
	if a.Add(V2(1, -1)) != (Vec2{4, 3}) {
		t.Fatalf("Add: %v", a.Add(V2(1, -1)))
	}
	if a.Sub(V2(1, 1)) != (Vec2{2, 3}) {
		t.Fatalf("Sub: %v", a.Sub(V2(1, 1)))
	}
	if a.Dot(V2(2, 0.5)) != 8 {
		t.Fatalf("Dot: %v", a.Dot(V2(2, 0.5)))
	}
	n := a.Normalize()
	if math.Abs(n.X-0.6) > eps || math.Abs(n.Y-0.8) > eps {
		t.Fatalf("Normalize: %v", n)
	}
}

func TestVec4Ops(t *testing.T) {
	a := V4(1, 2, 3, 4)
	if a.Scale(0.5) != (Vec4{0.5, 1, 1.5, 2}) {
		t.Fatalf("Scale: %v", a.Scale(0.5))
	}
	if a.Dot(V4(1, 1, 1, 1)) != 10 {
		t.Fatalf("Dot: %v", a.Dot(V4(1, 1, 1, 1)))
	}
	if a.XYZ() != (Vec3{1, 2, 3}) {
		t.Fatalf("XYZ: %v", a.XYZ())
	}
	if a.Add(a).Sub(a) != a {
		t.Fatalf("Add/Sub round trip broke: %v", a.Add(a).Sub(a))
	}
	if math.Abs(a.Normalize().Length()-1) > eps {
		t.Fatalf("Normalize length: %v", a.Normalize().Length())
	}
}
