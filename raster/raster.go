package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/internal/imageio"
)

var (
	// ErrInvalidSize is returned for a non-positive target size or scale.
	ErrInvalidSize = errors.New("raster: invalid size")

	// ErrEmptyCrop is returned when a crop rectangle misses the image.
	ErrEmptyCrop = errors.New("raster: crop rectangle outside image")
)

// Axis selects the mirror axis of Flip.
type Axis int

const (
	// Horizontal mirrors left and right.
	Horizontal Axis = iota
	// Vertical mirrors top and bottom.
	Vertical
	// Both mirrors along both axes, which equals a half turn.
	Both
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Resize resamples img to width×height with a bilinear filter.
func Resize(img *grid.Image, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	grid.Logger().Debug("raster resize",
		"from", fmt.Sprintf("%dx%d", img.Width(), img.Height()),
		"to", fmt.Sprintf("%dx%d", width, height))
	return refresh(img, transform.Resize(img.ToImage(), width, height, transform.Linear))
}

// Scale resizes img by the factors fx and fy, rounding the new size to whole
// pixels.
func Scale(img *grid.Image, fx, fy float64) error {
	if !(fx > 0) || !(fy > 0) {
		return fmt.Errorf("%w: scale %gx%g", ErrInvalidSize, fx, fy)
	}
	width := int(math.Round(float64(img.Width()) * fx))
	height := int(math.Round(float64(img.Height()) * fy))
	return Resize(img, width, height)
}

// Rotate turns img by degrees around its center. The canvas grows to hold
// the rotated content; uncovered corners are transparent.
func Rotate(img *grid.Image, degrees float64) error {
	grid.Logger().Debug("raster rotate", "degrees", degrees)
	// bild rotates clockwise for positive angles.
	out := transform.Rotate(img.ToImage(), -degrees, &transform.RotationOptions{ResizeBounds: true})
	return refresh(img, out)
}

// Crop keeps the width×height area whose top-left corner is at (left, top).
// The area is clipped to the image.
func Crop(img *grid.Image, left, top, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: crop %dx%d", ErrInvalidSize, width, height)
	}
	rect := image.Rect(left, top, left+width, top+height)
	bounds := image.Rect(0, 0, img.Width(), img.Height())
	if !rect.Overlaps(bounds) {
		return fmt.Errorf("%w: %v not in %v", ErrEmptyCrop, rect, bounds)
	}
	grid.Logger().Debug("raster crop", "rect", rect)
	return refresh(img, transform.Crop(img.ToImage(), rect.Intersect(bounds)))
}

// Flip mirrors img along axis.
func Flip(img *grid.Image, axis Axis) error {
	grid.Logger().Debug("raster flip", "axis", axis)
	src := img.ToImage()
	var out image.Image
	switch axis {
	case Horizontal:
		out = transform.FlipH(src)
	case Vertical:
		out = transform.FlipV(src)
	case Both:
		out = transform.FlipV(transform.FlipH(src))
	default:
		return fmt.Errorf("raster: unknown axis %d", int(axis))
	}
	return refresh(img, out)
}

// refresh stores a transformed image back into img, keeping its mode.
func refresh(img *grid.Image, out image.Image) error {
	nrgba := imageio.ToNRGBA(out)
	b := nrgba.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: result is %dx%d", ErrInvalidSize, b.Dx(), b.Dy())
	}
	return img.Refresh(b.Dx(), b.Dy(), nrgba.Pix)
}
