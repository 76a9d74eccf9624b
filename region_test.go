package grid

import (
	"errors"
	"image/color"
	"testing"
)

func TestBlank(t *testing.T) {
	img, err := Blank(3, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if err != nil {
		t.Fatalf("Blank() = %v", err)
	}
	if img.Width() != 3 || img.Height() != 2 || img.IsGray() {
		t.Fatalf("Blank() = %dx%d %v", img.Width(), img.Height(), img.Mode())
	}
	if got := pixel(img, 2, 1); got != [4]float64{10, 20, 30, 1} {
		t.Errorf("pixel = %v, want [10 20 30 1]", got)
	}

	if _, err := Blank(0, 2, color.NRGBA{}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Blank(0, 2) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPaste(t *testing.T) {
	dst := newTestColor(t, 3, 3, 0, 0, 0, 1)
	src := newTestColor(t, 2, 2, 200, 100, 50, 0.25)

	dst.Paste(src, 2, -1)

	// Only src pixel (0, 1) lands inside dst, at (2, 0).
	if got := pixel(dst, 2, 0); got != [4]float64{200, 100, 50, 0.25} {
		t.Errorf("pixel(2, 0) = %v, want pasted pixel", got)
	}
	if got := pixel(dst, 1, 0); got != [4]float64{0, 0, 0, 1} {
		t.Errorf("pixel(1, 0) = %v, want unchanged", got)
	}
	if got := pixel(dst, 2, 1); got != [4]float64{0, 0, 0, 1} {
		t.Errorf("pixel(2, 1) = %v, want unchanged", got)
	}
}

func TestPastePromotesGray(t *testing.T) {
	dst := newTestGray(t, 2, 1, 40, 1)
	dst.Paste(newTestColor(t, 1, 1, 1, 2, 3, 1), 1, 0)

	if dst.IsGray() {
		t.Fatal("Paste() of a color image should promote gray")
	}
	if got := pixel(dst, 0, 0); got != [4]float64{40, 40, 40, 1} {
		t.Errorf("pixel(0, 0) = %v, want [40 40 40 1]", got)
	}
	if got := pixel(dst, 1, 0); got != [4]float64{1, 2, 3, 1} {
		t.Errorf("pixel(1, 0) = %v, want [1 2 3 1]", got)
	}
}

func TestRegionAndCommit(t *testing.T) {
	img := newTestColor(t, 4, 4, 10, 10, 10, 1)
	img.R()[1][2] = 99

	r, err := img.Region(2, 1, 2, 2)
	if err != nil {
		t.Fatalf("Region() = %v", err)
	}
	if r.Width() != 2 || r.Height() != 2 {
		t.Fatalf("Region() size = %dx%d, want 2x2", r.Width(), r.Height())
	}
	if r.Origin() != img {
		t.Error("Origin() should return the source image")
	}
	if r.R()[0][0] != 99 {
		t.Errorf("region pixel (0, 0) = %v, want 99", r.R()[0][0])
	}

	// Editing the region does not touch the source until Commit.
	r.Invert()
	if img.R()[1][2] != 99 {
		t.Fatal("Region() shares planes with its source")
	}

	if err := r.Commit(); err != nil {
		t.Fatalf("Commit() = %v", err)
	}
	if img.R()[1][2] != 156 {
		t.Errorf("committed pixel = %v, want 156", img.R()[1][2])
	}
	if img.R()[0][0] != 10 || img.R()[3][1] != 10 {
		t.Error("Commit() changed pixels outside the region")
	}
}

func TestRegionOutOfBounds(t *testing.T) {
	img := newTestGray(t, 2, 2, 80, 1)

	r, err := img.Region(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Region() = %v", err)
	}
	if !r.IsGray() {
		t.Error("Region() should keep the gray mode")
	}
	if got := pixel(r, 0, 0); got != [4]float64{80, 80, 80, 1} {
		t.Errorf("pixel(0, 0) = %v, want source pixel", got)
	}
	for _, p := range [][2]int{{1, 0}, {0, 1}, {2, 2}} {
		if got := pixel(r, p[0], p[1]); got != [4]float64{} {
			t.Errorf("pixel(%d, %d) = %v, want transparent black", p[0], p[1], got)
		}
	}
}

func TestRegionInvalidSize(t *testing.T) {
	img := newTestGray(t, 2, 2, 0, 1)
	if _, err := img.Region(0, 0, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Region() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestCommitWithoutOrigin(t *testing.T) {
	img := newTestGray(t, 1, 1, 0, 1)
	if err := img.Commit(); !errors.Is(err, ErrNoOrigin) {
		t.Errorf("Commit() error = %v, want ErrNoOrigin", err)
	}
}

func TestPasteSelf(t *testing.T) {
	img := newTestColor(t, 4, 1, 0, 0, 0, 1)
	copy(img.R()[0], []float64{10, 20, 30, 40})
	copy(img.Alpha()[0], []float64{1, 0.5, 0.25, 0})

	img.Paste(img, 1, 0)

	wantR := []float64{10, 10, 20, 30}
	wantA := []float64{1, 1, 0.5, 0.25}
	for x := range wantR {
		if got := img.R()[0][x]; got != wantR[x] {
			t.Errorf("red[%d] = %v, want %v", x, got, wantR[x])
		}
		if got := img.Alpha()[0][x]; got != wantA[x] {
			t.Errorf("alpha[%d] = %v, want %v", x, got, wantA[x])
		}
	}
}
