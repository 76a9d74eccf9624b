package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/grid"
)

// Matrix is a 2×3 affine transform mapping source pixel coordinates to
// destination coordinates:
//
//	x' = m[0][0]*x + m[0][1]*y + m[0][2]
//	y' = m[1][0]*x + m[1][1]*y + m[1][2]
type Matrix [2][3]float64

// Identity is the transform that leaves an image unchanged.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}}

func (m Matrix) aff3() f64.Aff3 {
	return f64.Aff3{m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2]}
}

// Affine warps img by m with bilinear sampling. The canvas keeps its size;
// content mapped outside it is lost and uncovered pixels are transparent.
func Affine(img *grid.Image, m Matrix) error {
	grid.Logger().Debug("raster affine", "matrix", m)
	src := img.ToImage()
	dst := image.NewRGBA(src.Bounds())
	draw.BiLinear.Transform(dst, m.aff3(), src, src.Bounds(), draw.Over, nil)
	return refresh(img, dst)
}

// AffineCorners warps img so that its top-left, top-right and bottom-left
// corners land on the given points. The fourth corner follows from the
// other three.
func AffineCorners(img *grid.Image, topLeft, topRight, bottomLeft f64.Vec2) error {
	return Affine(img, CornerMatrix(img.Width(), img.Height(), topLeft, topRight, bottomLeft))
}

// CornerMatrix returns the transform that maps the corners (0, 0), (w, 0)
// and (0, h) of a w×h image to topLeft, topRight and bottomLeft.
func CornerMatrix(w, h int, topLeft, topRight, bottomLeft f64.Vec2) Matrix {
	fw, fh := float64(w), float64(h)
	return Matrix{
		{(topRight[0] - topLeft[0]) / fw, (bottomLeft[0] - topLeft[0]) / fh, topLeft[0]},
		{(topRight[1] - topLeft[1]) / fw, (bottomLeft[1] - topLeft[1]) / fh, topLeft[1]},
	}
}
