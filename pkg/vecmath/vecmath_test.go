package vecmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

const tol = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

func TestClip(t *testing.T) {
	vs := [][]float64{
		{3, 4},     // norm 5, clipped
		{0.3, 0.4}, // norm 0.5, untouched
		{0, 0},
	}

	Clip(vs, 1)

	if !approxEq(norm(vs[0]), 1) {
		t.Errorf("long vector norm: got %v, want 1", norm(vs[0]))
	}
	if !approxEq(vs[0][0], 0.6) || !approxEq(vs[0][1], 0.8) {
		t.Errorf("clipped direction changed: got %v", vs[0])
	}
	if !approxEq(vs[1][0], 0.3) || !approxEq(vs[1][1], 0.4) {
		t.Errorf("short vector modified: got %v", vs[1])
	}
	if vs[2][0] != 0 || vs[2][1] != 0 {
		t.Errorf("zero vector modified: got %v", vs[2])
	}
}

func TestRescale(t *testing.T) {
	vs := [][]float64{
		{3, 4},
		{0, 2},
	}

	Rescale(vs, 10)

	if !approxEq(norm(vs[0]), 10) || !approxEq(norm(vs[1]), 10) {
		t.Errorf("norms: got %v, %v, want 10, 10", norm(vs[0]), norm(vs[1]))
	}
	if !approxEq(vs[0][0], 6) || !approxEq(vs[0][1], 8) {
		t.Errorf("direction changed: got %v", vs[0])
	}
}

func TestUnit(t *testing.T) {
	vs := [][]float64{{5, 0, 0}, {1, 1, 1}}

	Unit(vs)

	for i, v := range vs {
		if !approxEq(norm(v), 1) {
			t.Errorf("vector %d norm: got %v, want 1", i, norm(v))
		}
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		angle, scale float64
		unit         AngleUnit
		x, y         float64
	}{
		{0, 2, Degrees, 2, 0},
		{90, 3, Degrees, 0, 3},
		{180, 1, Degrees, -1, 0},
		{math.Pi / 2, 1, Radians, 0, 1},
		{math.Pi, 2, Radians, -2, 0},
	}

	for _, tt := range tests {
		xy := Polar(tt.angle, tt.scale, tt.unit)
		if !approxEq(xy[0], tt.x) || !approxEq(xy[1], tt.y) {
			t.Errorf("Polar(%v, %v): got (%v, %v), want (%v, %v)",
				tt.angle, tt.scale, xy[0], xy[1], tt.x, tt.y)
		}
	}
}

func TestPolarN(t *testing.T) {
	out, err := PolarN([]float64{0, 90}, []float64{1, 2}, Degrees)
	if err != nil {
		t.Fatalf("PolarN failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("length: got %d, want 2", len(out))
	}
	if !approxEq(out[0][0], 1) || !approxEq(out[1][1], 2) {
		t.Errorf("values: got %v", out)
	}

	if _, err := PolarN([]float64{0}, []float64{1, 2}, Degrees); err == nil {
		t.Error("size mismatch accepted")
	}
}

func TestSymLogSpace(t *testing.T) {
	got, err := SymLogSpace(-2, 0, 7, 10)
	if err != nil {
		t.Fatalf("SymLogSpace failed: %v", err)
	}
	want := []float64{-1, -0.1, -0.01, 0, 0.01, 0.1, 1}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSymLogSpace_Even(t *testing.T) {
	got, err := SymLogSpace(-2, 0, 6, 10)
	if err != nil {
		t.Fatalf("SymLogSpace failed: %v", err)
	}
	want := []float64{-1, -0.1, -0.01, 0.01, 0.1, 1}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
	for _, v := range got {
		if v == 0 {
			t.Error("even-length grid contains zero")
		}
	}
}

func TestSymLogSpace_Invalid(t *testing.T) {
	if _, err := SymLogSpace(0, 0, 4, 10); err == nil {
		t.Error("start == stop accepted")
	}
	if _, err := SymLogSpace(-2, 0, 1, 10); err == nil {
		t.Error("num == 1 accepted")
	}
}
