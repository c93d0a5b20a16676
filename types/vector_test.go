package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if !ApproxEqual(v, XYZ(0.6, 0, 0.8), 1e-5) {
		t.Fatalf("expected normalized vector to be (0.6, 0, 0.8); got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Fatalf("expected zero vector to remain unchanged; got %v", zero)
	}
}

func TestVec3Cross(t *testing.T) {
	out := XYZ(1, 0, 0).Cross(XYZ(0, 1, 0))
	if out != XYZ(0, 0, 1) {
		t.Fatalf("expected x cross y to be z; got %v", out)
	}
}

func TestApproxEqual2WithNaN(t *testing.T) {
	nan := math32.NaN()
	if !ApproxEqual2(XY(nan, 1), XY(nan, 1), 1e-6) {
		t.Fatal("expected NaN components to match")
	}
	if ApproxEqual2(XY(nan, 1), XY(0, 1), 1e-6) {
		t.Fatal("expected NaN component not to match a number")
	}
}
