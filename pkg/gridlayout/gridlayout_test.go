package gridlayout

import (
	"errors"
	"testing"
)

func TestLayout2D(t *testing.T) {
	tests := []struct {
		count int
		rows  int
		cols  int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{3, 1, 3},
		{4, 2, 2},
		{5, 1, 5},
		{6, 2, 3},
		{7, 1, 7},
		{9, 3, 3},
		{10, 2, 5},
		{12, 3, 4},
		{16, 4, 4},
		{24, 4, 6},
		{100, 10, 10},
	}

	for _, tt := range tests {
		rows, cols, err := Layout2D(tt.count)
		if err != nil {
			t.Fatalf("Layout2D(%d) failed: %v", tt.count, err)
		}
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("Layout2D(%d): got (%d,%d), want (%d,%d)", tt.count, rows, cols, tt.rows, tt.cols)
		}
	}
}

func TestLayout2D_Properties(t *testing.T) {
	for count := 1; count <= 500; count++ {
		rows, cols, err := Layout2D(count)
		if err != nil {
			t.Fatalf("Layout2D(%d) failed: %v", count, err)
		}
		if rows*cols != count {
			t.Errorf("Layout2D(%d): %d*%d != %d", count, rows, cols, count)
		}
		if rows > cols {
			t.Errorf("Layout2D(%d): rows %d > cols %d", count, rows, cols)
		}
	}
}

func TestLayout3D(t *testing.T) {
	tests := []struct {
		count int
		depth int
		rows  int
		cols  int
	}{
		{1, 1, 1, 1},
		{2, 1, 1, 2},
		{8, 2, 2, 2},
		{10, 2, 1, 5},
		{12, 2, 2, 3},
		{27, 3, 3, 3},
		{64, 4, 4, 4},
	}

	for _, tt := range tests {
		depth, rows, cols, err := Layout3D(tt.count)
		if err != nil {
			t.Fatalf("Layout3D(%d) failed: %v", tt.count, err)
		}
		if depth != tt.depth || rows != tt.rows || cols != tt.cols {
			t.Errorf("Layout3D(%d): got (%d,%d,%d), want (%d,%d,%d)",
				tt.count, depth, rows, cols, tt.depth, tt.rows, tt.cols)
		}
	}
}

func TestLayout3D_Product(t *testing.T) {
	for count := 1; count <= 500; count++ {
		depth, rows, cols, err := Layout3D(count)
		if err != nil {
			t.Fatalf("Layout3D(%d) failed: %v", count, err)
		}
		if depth*rows*cols != count {
			t.Errorf("Layout3D(%d): %d*%d*%d != %d", count, depth, rows, cols, count)
		}
	}
}

func TestLayout_InvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		if _, _, err := Layout2D(count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Layout2D(%d): got %v, want ErrInvalidCount", count, err)
		}
		if _, _, _, err := Layout3D(count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Layout3D(%d): got %v, want ErrInvalidCount", count, err)
		}
	}
}
