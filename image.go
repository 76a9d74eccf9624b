package grid

import (
	"fmt"
	"math"

	"github.com/gogpu/grid/matrix"
)

// Mode tells which channel planes an Image carries.
type Mode uint8

const (
	// ModeColor images carry separate red, green and blue planes.
	ModeColor Mode = iota
	// ModeGray images carry a single gray plane that stands in for all three.
	ModeGray
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Image is an image decomposed into per-channel planes.
//
// Color planes hold values in [0, 255]; the alpha plane holds values in
// [0, 1] and is not premultiplied into the color planes. Every plane is a
// height×width matrix indexed as plane[y][x].
//
// A gray image has one plane. R, G and B all return it, so a write through
// any of them is seen by the others.
//
// Planes are returned by reference and may be edited freely. Image is not
// safe for concurrent mutation.
type Image struct {
	width  int
	height int
	mode   Mode

	r, g, b matrix.Matrix // ModeColor
	gray    matrix.Matrix // ModeGray
	a       matrix.Matrix

	// Set by Region; Commit writes back into origin.
	origin                *Image
	originLeft, originTop int
}

// NewColor creates a color image from existing planes without copying them.
// All four planes must be rectangular and of equal size, and no two may share
// a row; the image owns them from then on.
func NewColor(r, g, b, a matrix.Matrix) (*Image, error) {
	planes := []struct {
		name string
		m    matrix.Matrix
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}}
	for _, p := range planes {
		if err := p.m.Validate("grid.NewColor", p.name); err != nil {
			return nil, err
		}
		if !matrix.SameShape(p.m, a) {
			return nil, fmt.Errorf("%w: plane %s is %dx%d, alpha is %dx%d",
				ErrInvalidDimensions, p.name, p.m.Width(), p.m.Height(), a.Width(), a.Height())
		}
	}
	if err := checkDistinct("grid.NewColor", r, g, b, a); err != nil {
		return nil, err
	}
	return &Image{
		width:  a.Width(),
		height: a.Height(),
		mode:   ModeColor,
		r:      r,
		g:      g,
		b:      b,
		a:      a,
	}, nil
}

// NewGray creates a gray image from existing planes without copying them.
// The two planes must not share a row.
func NewGray(gray, a matrix.Matrix) (*Image, error) {
	if err := gray.Validate("grid.NewGray", "gray"); err != nil {
		return nil, err
	}
	if err := a.Validate("grid.NewGray", "a"); err != nil {
		return nil, err
	}
	if !matrix.SameShape(gray, a) {
		return nil, fmt.Errorf("%w: gray plane is %dx%d, alpha is %dx%d",
			ErrInvalidDimensions, gray.Width(), gray.Height(), a.Width(), a.Height())
	}
	if err := checkDistinct("grid.NewGray", gray, a); err != nil {
		return nil, err
	}
	return &Image{
		width:  a.Width(),
		height: a.Height(),
		mode:   ModeGray,
		gray:   gray,
		a:      a,
	}, nil
}

// FromRGBA decomposes interleaved, non-premultiplied RGBA bytes (4 per pixel,
// row-major) into a color image. Alpha bytes are scaled to [0, 1].
func FromRGBA(width, height int, pix []byte) (*Image, error) {
	if err := checkRGBA(width, height, pix); err != nil {
		return nil, err
	}
	img := &Image{width: width, height: height, mode: ModeColor}
	img.r = newPlane(width, height)
	img.g = newPlane(width, height)
	img.b = newPlane(width, height)
	img.a = newPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			img.r[y][x] = float64(pix[i+0])
			img.g[y][x] = float64(pix[i+1])
			img.b[y][x] = float64(pix[i+2])
			img.a[y][x] = float64(pix[i+3]) / 255
		}
	}
	return img, nil
}

// FromGrayRGBA is like FromRGBA but keeps only the red byte of every pixel,
// producing a gray image.
func FromGrayRGBA(width, height int, pix []byte) (*Image, error) {
	if err := checkRGBA(width, height, pix); err != nil {
		return nil, err
	}
	img := &Image{width: width, height: height, mode: ModeGray}
	img.gray = newPlane(width, height)
	img.a = newPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			img.gray[y][x] = float64(pix[i])
			img.a[y][x] = float64(pix[i+3]) / 255
		}
	}
	return img, nil
}

func checkRGBA(width, height int, pix []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d RGBA", ErrInvalidDimensions, len(pix), width, height)
	}
	return nil
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// Mode returns whether the image is color or gray.
func (img *Image) Mode() Mode {
	return img.mode
}

// IsGray reports whether the image is in gray mode.
func (img *Image) IsGray() bool {
	return img.mode == ModeGray
}

// R returns the red plane, or the gray plane of a gray image.
func (img *Image) R() matrix.Matrix {
	if img.mode == ModeGray {
		return img.gray
	}
	return img.r
}

// G returns the green plane, or the gray plane of a gray image.
func (img *Image) G() matrix.Matrix {
	if img.mode == ModeGray {
		return img.gray
	}
	return img.g
}

// B returns the blue plane, or the gray plane of a gray image.
func (img *Image) B() matrix.Matrix {
	if img.mode == ModeGray {
		return img.gray
	}
	return img.b
}

// Gray returns the gray plane, or nil for a color image.
func (img *Image) Gray() matrix.Matrix {
	return img.gray
}

// Alpha returns the alpha plane.
func (img *Image) Alpha() matrix.Matrix {
	return img.a
}

// planes returns the distinct color planes: one for gray, three for color.
func (img *Image) planes() []matrix.Matrix {
	if img.mode == ModeGray {
		return []matrix.Matrix{img.gray}
	}
	return []matrix.Matrix{img.r, img.g, img.b}
}

// channels returns the red, green and blue planes, aliasing the gray plane
// in gray mode.
func (img *Image) channels() [3]matrix.Matrix {
	return [3]matrix.Matrix{img.R(), img.G(), img.B()}
}

// rowStarts returns the address of the first cell of every row of the
// image's own planes, alpha included.
func (img *Image) rowStarts() map[*float64]struct{} {
	rows := make(map[*float64]struct{})
	for _, p := range append(img.planes(), img.a) {
		for _, row := range p {
			rows[&row[0]] = struct{}{}
		}
	}
	return rows
}

// sharesPlanes reports whether a and b have any plane row in common.
func sharesPlanes(a, b *Image) bool {
	if a == b {
		return true
	}
	rows := a.rowStarts()
	for _, p := range append(b.planes(), b.a) {
		for _, row := range p {
			if _, ok := rows[&row[0]]; ok {
				return true
			}
		}
	}
	return false
}

// checkDistinct returns ErrSharedPlanes if two of planes have a row in
// common. The planes must already be validated.
func checkDistinct(op string, planes ...matrix.Matrix) error {
	rows := make(map[*float64]struct{})
	for _, p := range planes {
		for _, row := range p {
			if _, ok := rows[&row[0]]; ok {
				return fmt.Errorf("%w: %s", ErrSharedPlanes, op)
			}
			rows[&row[0]] = struct{}{}
		}
	}
	return nil
}

// RGBA interleaves the planes back into non-premultiplied RGBA bytes.
// Gray images repeat the gray value in the red, green and blue slots.
// Alpha is stored as round(a*255). Values outside the byte range are
// clamped and NaN is stored as 0, as a host surface would.
func (img *Image) RGBA() []byte {
	pix := make([]byte, img.width*img.height*4)
	ch := img.channels()
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			i := (y*img.width + x) * 4
			pix[i+0] = toByte(ch[0][y][x])
			pix[i+1] = toByte(ch[1][y][x])
			pix[i+2] = toByte(ch[2][y][x])
			pix[i+3] = toByte(img.a[y][x] * 255)
		}
	}
	return pix
}

// Refresh replaces the image content with RGBA bytes returned by a
// rasterizer, keeping the current mode. The size may change.
func (img *Image) Refresh(width, height int, pix []byte) error {
	var (
		fresh *Image
		err   error
	)
	if img.mode == ModeGray {
		fresh, err = FromGrayRGBA(width, height, pix)
	} else {
		fresh, err = FromRGBA(width, height, pix)
	}
	if err != nil {
		return err
	}
	img.adopt(fresh)
	return nil
}

// adopt takes over the size, mode and planes of other.
func (img *Image) adopt(other *Image) {
	img.width = other.width
	img.height = other.height
	img.mode = other.mode
	img.r, img.g, img.b = other.r, other.g, other.b
	img.gray = other.gray
	img.a = other.a
}

// Clone returns a deep copy of the image, preserving its mode.
// The copy is not linked to any Region origin.
func (img *Image) Clone() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		mode:   img.mode,
		r:      img.r.Clone(),
		g:      img.g.Clone(),
		b:      img.b.Clone(),
		gray:   img.gray.Clone(),
		a:      img.a.Clone(),
	}
}

// Grayscale returns a new gray image with luma round(0.299r + 0.587g + 0.114b)
// and the alpha plane copied. The receiver is not modified.
func (img *Image) Grayscale() *Image {
	ch := img.channels()
	gray := newPlane(img.width, img.height)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			gray[y][x] = math.Round(0.299*ch[0][y][x] + 0.587*ch[1][y][x] + 0.114*ch[2][y][x])
		}
	}
	return &Image{
		width:  img.width,
		height: img.height,
		mode:   ModeGray,
		gray:   gray,
		a:      img.a.Clone(),
	}
}

// Invert replaces every color value v with 255-v. Alpha is untouched.
func (img *Image) Invert() {
	for _, p := range img.planes() {
		for _, row := range p {
			for x, v := range row {
				row[x] = 255 - v
			}
		}
	}
}

// promote converts a gray image to color mode with three independent copies
// of the gray plane.
func (img *Image) promote() {
	if img.mode != ModeGray {
		return
	}
	img.r = img.gray
	img.g = img.gray.Clone()
	img.b = img.gray.Clone()
	img.gray = nil
	img.mode = ModeColor
}

func newPlane(width, height int) matrix.Matrix {
	p := make(matrix.Matrix, height)
	for y := range p {
		p[y] = make([]float64, width)
	}
	return p
}

// toByte rounds v to the nearest byte, clamping to [0, 255]; NaN maps to 0.
func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
