package grid

import (
	"math"
	"testing"

	"github.com/gogpu/grid/matrix"
)

// Test helper functions shared across grid tests.

// newTestColor creates a color image filled with one straight-alpha color.
func newTestColor(t *testing.T, w, h int, r, g, b, a float64) *Image {
	t.Helper()
	img, err := NewColor(plane(w, h, r), plane(w, h, g), plane(w, h, b), plane(w, h, a))
	if err != nil {
		t.Fatalf("NewColor() = %v", err)
	}
	return img
}

// newTestGray creates a gray image filled with one level.
func newTestGray(t *testing.T, w, h int, level, a float64) *Image {
	t.Helper()
	img, err := NewGray(plane(w, h, level), plane(w, h, a))
	if err != nil {
		t.Fatalf("NewGray() = %v", err)
	}
	return img
}

func plane(w, h int, v float64) matrix.Matrix {
	m, err := matrix.Ones(w, h, v)
	if err != nil {
		panic(err)
	}
	return m
}

// pixel returns the r, g, b, a values of img at (x, y).
func pixel(img *Image, x, y int) [4]float64 {
	return [4]float64{img.R()[y][x], img.G()[y][x], img.B()[y][x], img.Alpha()[y][x]}
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
