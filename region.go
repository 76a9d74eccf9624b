package grid

import (
	"fmt"
	"image/color"

	"github.com/gogpu/grid/matrix"
)

// Blank creates a color image filled with fill. Fill is non-premultiplied;
// its alpha byte is scaled to [0, 1].
func Blank(width, height int, fill color.NRGBA) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	img := &Image{width: width, height: height, mode: ModeColor}
	img.r = filled(width, height, float64(fill.R))
	img.g = filled(width, height, float64(fill.G))
	img.b = filled(width, height, float64(fill.B))
	img.a = filled(width, height, float64(fill.A)/255)
	return img, nil
}

// solid creates an image of a single gray level in the given mode.
func solid(width, height int, mode Mode, level, alpha float64) *Image {
	img := &Image{width: width, height: height, mode: mode}
	if mode == ModeGray {
		img.gray = filled(width, height, level)
	} else {
		img.r = filled(width, height, level)
		img.g = filled(width, height, level)
		img.b = filled(width, height, level)
	}
	img.a = filled(width, height, alpha)
	return img
}

func filled(width, height int, v float64) matrix.Matrix {
	p := newPlane(width, height)
	if v != 0 {
		for _, row := range p {
			for x := range row {
				row[x] = v
			}
		}
	}
	return p
}

// Paste copies src into img with its top-left corner at (left, top),
// replacing the covered pixels including their alpha. Nothing is blended;
// the part of src outside img is dropped. A gray image becomes color when
// src is color. src may be img itself.
func (img *Image) Paste(src *Image, left, top int) {
	if sharesPlanes(img, src) {
		src = src.Clone()
	}
	if src.mode == ModeColor {
		img.promote()
	}
	dst := img.planes()
	from := src.channels()

	minX := max(left, 0)
	minY := max(top, 0)
	maxX := min(left+src.width, img.width)
	maxY := min(top+src.height, img.height)

	for y := minY; y < maxY; y++ {
		sy := y - top
		for x := minX; x < maxX; x++ {
			sx := x - left
			for i, plane := range dst {
				plane[y][x] = from[i][sy][sx]
			}
			img.a[y][x] = src.a[sy][sx]
		}
	}
}

// Region copies the width×height area of img whose top-left corner is at
// (left, top) into a new image of the same mode. Parts of the area outside
// img are transparent black. The region remembers where it came from, so
// that Commit can write it back after editing.
func (img *Image) Region(left, top, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: region %dx%d", ErrInvalidDimensions, width, height)
	}
	r := solid(width, height, img.mode, 0, 0)
	r.Paste(img, -left, -top)
	r.origin = img
	r.originLeft = left
	r.originTop = top
	return r, nil
}

// Origin returns the image a region was taken from, or nil.
func (img *Image) Origin() *Image {
	return img.origin
}

// Commit writes a region back into the image it was taken from, at the
// position it was taken from. It returns ErrNoOrigin for other images.
func (img *Image) Commit() error {
	if img.origin == nil {
		return ErrNoOrigin
	}
	img.origin.Paste(img, img.originLeft, img.originTop)
	return nil
}
