package geom

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVec2_Distance(t *testing.T) {
	if got := V(0, 0).Distance(V(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := V(1, 1).DistanceSquared(V(4, 5)); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestVec2_Normalize(t *testing.T) {
	unit, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("expected normalization to succeed")
	}
	if math.Abs(unit.Len()-1) > 1e-12 {
		t.Errorf("unit length = %v", unit.Len())
	}
	if math.Abs(unit.X-0.6) > 1e-12 || math.Abs(unit.Y-0.8) > 1e-12 {
		t.Errorf("unit = %v, want (0.6, 0.8)", unit)
	}
}

func TestVec2_NormalizeDegenerate(t *testing.T) {
	if _, ok := V(0, 0).Normalize(); ok {
		t.Fatal("zero vector must not normalize")
	}
	if _, ok := V(1e-9, -1e-9).Normalize(); ok {
		t.Fatal("near-zero vector must not normalize")
	}
}
