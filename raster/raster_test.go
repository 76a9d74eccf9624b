package raster

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/matrix"
)

// newImage builds an opaque color image whose red plane is red[y][x] and
// whose green and blue planes are constant.
func newImage(t *testing.T, red matrix.Matrix) *grid.Image {
	t.Helper()
	w, h := red.Width(), red.Height()
	g, _ := matrix.Ones(w, h, 40)
	b, _ := matrix.Ones(w, h, 80)
	a, _ := matrix.Ones(w, h, 1)
	img, err := grid.NewColor(red, g, b, a)
	if err != nil {
		t.Fatalf("NewColor() = %v", err)
	}
	return img
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1
}

func TestResize(t *testing.T) {
	red, _ := matrix.Ones(2, 2, 120)
	img := newImage(t, red)

	if err := Resize(img, 4, 3); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Resize() size = %dx%d, want 4x3", img.Width(), img.Height())
	}
	for y := range 3 {
		for x := range 4 {
			if !near(img.R()[y][x], 120) || !near(img.B()[y][x], 80) || img.Alpha()[y][x] != 1 {
				t.Errorf("pixel(%d, %d) = %v %v %v", x, y, img.R()[y][x], img.B()[y][x], img.Alpha()[y][x])
			}
		}
	}
}

func TestResizeKeepsGray(t *testing.T) {
	level, _ := matrix.Ones(3, 3, 90)
	alpha, _ := matrix.Ones(3, 3, 1)
	img, err := grid.NewGray(level, alpha)
	if err != nil {
		t.Fatal(err)
	}

	if err := Resize(img, 6, 6); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if !img.IsGray() {
		t.Error("Resize() should keep the gray mode")
	}
	if !near(img.Gray()[5][5], 90) {
		t.Errorf("gray = %v, want about 90", img.Gray()[5][5])
	}
}

func TestResizeInvalid(t *testing.T) {
	red, _ := matrix.Ones(2, 2, 0)
	img := newImage(t, red)

	if err := Resize(img, 0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 2) error = %v, want ErrInvalidSize", err)
	}
	if err := Scale(img, -1, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Scale(-1, 1) error = %v, want ErrInvalidSize", err)
	}
	if img.Width() != 2 {
		t.Error("rejected resize changed the image")
	}
}

func TestScale(t *testing.T) {
	red, _ := matrix.Ones(4, 2, 10)
	img := newImage(t, red)

	if err := Scale(img, 0.5, 1.5); err != nil {
		t.Fatalf("Scale() = %v", err)
	}
	if img.Width() != 2 || img.Height() != 3 {
		t.Errorf("Scale() size = %dx%d, want 2x3", img.Width(), img.Height())
	}
}

func TestFlip(t *testing.T) {
	tests := []struct {
		axis Axis
		want matrix.Matrix
	}{
		{Horizontal, matrix.Matrix{{2, 1}, {4, 3}}},
		{Vertical, matrix.Matrix{{3, 4}, {1, 2}}},
		{Both, matrix.Matrix{{4, 3}, {2, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			img := newImage(t, matrix.Matrix{{1, 2}, {3, 4}})
			if err := Flip(img, tt.axis); err != nil {
				t.Fatalf("Flip() = %v", err)
			}
			if !matrix.Equal(img.R(), tt.want) {
				t.Errorf("red = %v, want %v", img.R(), tt.want)
			}
		})
	}
}

func TestFlipUnknownAxis(t *testing.T) {
	img := newImage(t, matrix.Matrix{{1}})
	if err := Flip(img, Axis(7)); err == nil {
		t.Error("Flip() with unknown axis should fail")
	}
}

func TestCrop(t *testing.T) {
	img := newImage(t, matrix.Matrix{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	if err := Crop(img, 1, 1, 5, 5); err != nil {
		t.Fatalf("Crop() = %v", err)
	}
	want := matrix.Matrix{{5, 6}, {8, 9}}
	if !matrix.Equal(img.R(), want) {
		t.Errorf("red = %v, want %v", img.R(), want)
	}
}

func TestCropOutside(t *testing.T) {
	img := newImage(t, matrix.Matrix{{1, 2}})
	if err := Crop(img, 5, 0, 1, 1); !errors.Is(err, ErrEmptyCrop) {
		t.Errorf("Crop() error = %v, want ErrEmptyCrop", err)
	}
	if err := Crop(img, 0, 0, 0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Crop() error = %v, want ErrInvalidSize", err)
	}
}

func TestRotate(t *testing.T) {
	red, _ := matrix.Ones(4, 2, 200)
	img := newImage(t, red)

	if err := Rotate(img, 90); err != nil {
		t.Fatalf("Rotate() = %v", err)
	}
	if img.Height() <= img.Width() {
		t.Errorf("Rotate(90) of 4x2 gave %dx%d, want a tall image", img.Width(), img.Height())
	}
}

func TestAffineIdentity(t *testing.T) {
	img := newImage(t, matrix.Matrix{{10, 20}, {30, 40}})

	if err := Affine(img, Identity); err != nil {
		t.Fatalf("Affine() = %v", err)
	}
	want := matrix.Matrix{{10, 20}, {30, 40}}
	if !matrix.Equal(img.R(), want) {
		t.Errorf("red = %v, want %v", img.R(), want)
	}
}

func TestAffineTranslate(t *testing.T) {
	red, _ := matrix.Ones(4, 1, 150)
	img := newImage(t, red)

	if err := Affine(img, Matrix{{1, 0, 2}, {0, 1, 0}}); err != nil {
		t.Fatalf("Affine() = %v", err)
	}
	if img.Width() != 4 || img.Height() != 1 {
		t.Fatalf("Affine() size = %dx%d, want 4x1", img.Width(), img.Height())
	}
	if a := img.Alpha()[0][0]; a != 0 {
		t.Errorf("uncovered alpha = %v, want 0", a)
	}
	if r := img.R()[0][3]; !near(r, 150) {
		t.Errorf("covered red = %v, want about 150", r)
	}
}

func TestCornerMatrix(t *testing.T) {
	m := CornerMatrix(4, 2, f64.Vec2{1, 1}, f64.Vec2{9, 1}, f64.Vec2{1, 3})
	want := Matrix{{2, 0, 1}, {0, 1, 1}}
	if m != want {
		t.Errorf("CornerMatrix() = %v, want %v", m, want)
	}

	if got := CornerMatrix(3, 3, f64.Vec2{0, 0}, f64.Vec2{3, 0}, f64.Vec2{0, 3}); got != Identity {
		t.Errorf("CornerMatrix() of own corners = %v, want Identity", got)
	}
}

func TestAffineCorners(t *testing.T) {
	img := newImage(t, matrix.Matrix{{10, 20}, {30, 40}})

	if err := AffineCorners(img, f64.Vec2{0, 0}, f64.Vec2{2, 0}, f64.Vec2{0, 2}); err != nil {
		t.Fatalf("AffineCorners() = %v", err)
	}
	if img.R()[1][1] != 40 {
		t.Errorf("red = %v, want unchanged", img.R())
	}
}
