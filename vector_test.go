package segint

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 1, Y: 2}
	b := Vector{X: 3, Y: -1}

	if got := a.Add(b); got != (Vector{X: 4, Y: 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector{X: -2, Y: 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector{X: 2, Y: 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Div(2); got != (Vector{X: 0.5, Y: 1}) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
	if got := cross(a, b); got != -7 {
		t.Errorf("cross: got %v, want -7", got)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length: got %v, want 5", got)
	}
}

func TestFloatsEqual(t *testing.T) {
	if !floatsEqual(1.0, 1.0+1e-15, DefaultEpsilon) {
		t.Error("expected near-equal floats to compare equal")
	}
	if floatsEqual(1.0, 1.1, DefaultEpsilon) {
		t.Error("expected distinct floats to compare unequal")
	}
	if !floatsEqual(1e12, 1e12+1e-3, DefaultEpsilon) {
		t.Error("expected large-magnitude floats to use relative tolerance")
	}
}

func TestPointsEqual(t *testing.T) {
	p := Vector{X: 1, Y: 2}
	q := Vector{X: 1 + 1e-15, Y: 2 - 1e-15}
	if !pointsEqual(p, q, DefaultEpsilon) {
		t.Error("expected near-equal points to compare equal")
	}
	if pointsEqual(p, Vector{X: 1, Y: 3}, DefaultEpsilon) {
		t.Error("expected distinct points to compare unequal")
	}
}

func TestIsFiniteVector(t *testing.T) {
	if !isFiniteVector(Vector{X: 1, Y: -1}) {
		t.Error("expected finite vector to report finite")
	}
	if isFiniteVector(Vector{X: math.Inf(1), Y: 0}) {
		t.Error("expected +Inf x to report non-finite")
	}
	if isFiniteVector(Vector{X: 0, Y: math.NaN()}) {
		t.Error("expected NaN y to report non-finite")
	}
}

func TestCompareYX(t *testing.T) {
	if compareYX(Vector{X: 0, Y: 0}, Vector{X: 0, Y: 1}) >= 0 {
		t.Error("expected smaller y to sort first")
	}
	if compareYX(Vector{X: 0, Y: 0}, Vector{X: 1, Y: 0}) >= 0 {
		t.Error("expected smaller x to sort first on a y tie")
	}
	if compareYX(Vector{X: 1, Y: 1}, Vector{X: 1, Y: 1}) != 0 {
		t.Error("expected identical points to compare equal")
	}
}
