package grid

import "math"

// blendAlphaThreshold is the output alpha below which a composited pixel is
// treated as fully transparent and keeps the base pixel's alpha instead.
const blendAlphaThreshold = 0.003

// Direction selects which image of a blend is the top layer.
type Direction int

const (
	// Under places the overlay on top of the base. This is the default.
	Under Direction = iota
	// Over places the base on top of the overlay.
	Over
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Under:
		return "under"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// BlendOption configures Blend.
type BlendOption func(*blendOptions)

type blendOptions struct {
	direction        Direction
	offsetX, offsetY int
}

// WithDirection sets which image is composited on top.
func WithDirection(d Direction) BlendOption {
	return func(o *blendOptions) {
		o.direction = d
	}
}

// WithOffset positions the overlay's top-left corner at (x, y) in the base.
func WithOffset(x, y int) BlendOption {
	return func(o *blendOptions) {
		o.offsetX = x
		o.offsetY = y
	}
}

// Blend composites overlay onto img in place using straight-alpha "over":
//
//	a   = top.a + bottom.a*(1-top.a)
//	c   = round((top.c*top.a + bottom.c*bottom.a*(1-top.a)) / a)
//
// Base pixels not covered by the offset overlay are unchanged. When the
// computed alpha is below 0.003 the pixel keeps its original alpha; a fully
// transparent result stores 0 in the color channels.
//
// A gray image stays gray only if the overlay is gray too. The overlay may
// be img itself, for example to drop a shadow.
func (img *Image) Blend(overlay *Image, opts ...BlendOption) {
	o := blendOptions{direction: Under}
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Debug("blend",
		"direction", o.direction,
		"offsetX", o.offsetX, "offsetY", o.offsetY,
		"base", img.mode, "overlay", overlay.mode)

	// Composite from a snapshot when overlay reads img's own planes.
	if sharesPlanes(img, overlay) {
		overlay = overlay.Clone()
	}
	if overlay.mode == ModeColor {
		img.promote()
	}
	dst := img.planes()
	src := overlay.channels()

	// Rows and columns of img that the overlay covers.
	minX := max(o.offsetX, 0)
	minY := max(o.offsetY, 0)
	maxX := min(o.offsetX+overlay.width, img.width)
	maxY := min(o.offsetY+overlay.height, img.height)

	for y := minY; y < maxY; y++ {
		oy := y - o.offsetY
		for x := minX; x < maxX; x++ {
			ox := x - o.offsetX

			baseA := img.a[y][x]
			overA := overlay.a[oy][ox]
			topA, bottomA := overA, baseA
			if o.direction == Over {
				topA, bottomA = baseA, overA
			}

			outA := topA + bottomA*(1-topA)
			for i, plane := range dst {
				topC, bottomC := src[i][oy][ox], plane[y][x]
				if o.direction == Over {
					topC, bottomC = bottomC, topC
				}
				plane[y][x] = roundChannel((topC*topA + bottomC*bottomA*(1-topA)) / outA)
			}

			if outA < blendAlphaThreshold {
				outA = baseA
			}
			img.a[y][x] = outA
		}
	}
}

// Flatten composites the image over opaque white, removing transparency
// from every pixel that had any.
func (img *Image) Flatten() {
	white := solid(img.width, img.height, img.mode, 255, 1)
	img.Blend(white, WithDirection(Over))
}

// roundChannel rounds a composited channel; 0/0 from two transparent
// layers becomes 0.
func roundChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Round(v)
}
