// Package vecmath provides small helpers for slices of Euclidean vectors:
// norm clipping and rescaling, polar-to-Cartesian conversion, and symmetric
// log-spaced sample grids.
//
// Functions taking [][]float64 treat each inner slice as one vector and
// modify it in place; callers wanting to keep the input copy it first.
package vecmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// AngleUnit selects how angles are interpreted.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// Clip caps the Euclidean norm of each vector at max. Vectors already at or
// below max are untouched.
func Clip(vs [][]float64, max float64) {
	for _, v := range vs {
		if n := floats.Norm(v, 2); n > max {
			floats.Scale(max/n, v)
		}
	}
}

// Rescale sets the Euclidean norm of each vector to mag, preserving
// direction. Zero vectors have no direction and are left unchanged.
func Rescale(vs [][]float64, mag float64) {
	for _, v := range vs {
		if n := floats.Norm(v, 2); n > 0 {
			floats.Scale(mag/n, v)
		}
	}
}

// Unit normalizes each vector to unit length. Shorthand for Rescale(vs, 1).
func Unit(vs [][]float64) {
	Rescale(vs, 1)
}

// Polar converts one polar coordinate to a Cartesian (x, y) pair.
func Polar(angle, scale float64, unit AngleUnit) [2]float64 {
	if unit == Degrees {
		angle *= math.Pi / 180
	}
	return [2]float64{math.Cos(angle) * scale, math.Sin(angle) * scale}
}

// PolarN converts parallel slices of angles and lengths to Cartesian pairs.
// The slices must have equal length.
func PolarN(angles, scales []float64, unit AngleUnit) ([][2]float64, error) {
	if len(angles) != len(scales) {
		return nil, fmt.Errorf("size mismatch: %d angles, %d scales", len(angles), len(scales))
	}
	out := make([][2]float64, len(angles))
	for i := range angles {
		out[i] = Polar(angles[i], scales[i], unit)
	}
	return out, nil
}

// SymLogSpace returns num samples spaced logarithmically in both the
// negative and positive directions, from -base^stop up to +base^stop with
// base^start the smallest non-zero magnitude. Zero is included exactly when
// num is odd:
//
//	SymLogSpace(-2, 0, 7, 10) // [-1, -0.1, -0.01, 0, 0.01, 0.1, 1]
//	SymLogSpace(-2, 0, 6, 10) // [-1, -0.1, -0.01,    0.01, 0.1, 1]
//
// start must be less than stop and num greater than 1.
func SymLogSpace(start, stop float64, num int, base float64) ([]float64, error) {
	if start >= stop {
		return nil, fmt.Errorf("start %v must be less than stop %v", start, stop)
	}
	if num < 2 {
		return nil, fmt.Errorf("num must be greater than 1, got %d", num)
	}

	zero := num % 2
	n := (num - zero) / 2

	pos := make([]float64, n)
	if n == 1 {
		pos[0] = math.Pow(base, start)
	} else {
		floats.LogSpan(pos, math.Pow(base, start), math.Pow(base, stop))
	}

	out := make([]float64, 0, num)
	for i := n - 1; i >= 0; i-- {
		out = append(out, -pos[i])
	}
	if zero == 1 {
		out = append(out, 0)
	}
	out = append(out, pos...)

	return out, nil
}
