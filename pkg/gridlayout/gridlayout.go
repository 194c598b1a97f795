// Package gridlayout computes grid shapes for laying out a number of items.
//
// Given a count of items, the package produces a 2D (rows, cols) or 3D
// (depth, rows, cols) shape whose product equals the count exactly and whose
// dimensions are as close to equal as trial division allows. Counts with no
// useful divisor (1, primes) collapse to a single row.
package gridlayout

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned when a layout is requested for fewer than one item.
var ErrInvalidCount = errors.New("count must be at least 1")

// Layout2D computes the near-square grid shape for count items.
//
// The result satisfies rows*cols == count and rows <= cols. rows is the
// largest divisor of count that does not exceed sqrt(count), so for example
// 12 items give (3, 4) rather than (2, 6). Prime counts (and counts below 4)
// give a single row (1, count).
func Layout2D(count int) (rows, cols int, err error) {
	if count < 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	d := largestDivisorUpTo(count, intRoot(count, 2))
	return d, count / d, nil
}

// Layout3D computes the near-cube grid shape for count items.
//
// The depth is chosen first: the largest divisor of count not exceeding
// cbrt(count). The remaining count/depth items are then split with Layout2D.
// The depth choice is greedy and never revisited, so the result is not the
// globally closest cuboid; 10 items give (2, 1, 5), not (1, 2, 5).
func Layout3D(count int) (depth, rows, cols int, err error) {
	if count < 1 {
		return 0, 0, 0, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	d := largestDivisorUpTo(count, intRoot(count, 3))
	rows, cols, err = Layout2D(count / d)
	if err != nil {
		return 0, 0, 0, err
	}
	return d, rows, cols, nil
}

// largestDivisorUpTo returns the largest divisor of count in [2, limit],
// or 1 if there is none.
func largestDivisorUpTo(count, limit int) int {
	d := 1
	for i := 2; i <= limit; i++ {
		if count%i == 0 {
			d = i
		}
	}
	return d
}

// intRoot returns floor(count^(1/n)) using integer arithmetic only, so
// perfect powers are never lost to floating-point rounding.
func intRoot(count, n int) int {
	if count < 1 {
		return 0
	}
	r := 1
	for pow(r+1, n) <= count {
		r++
	}
	return r
}

func pow(base, exp int) int {
	p := 1
	for i := 0; i < exp; i++ {
		p *= base
	}
	return p
}
