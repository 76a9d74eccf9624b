package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/cluster"
	"github.com/gogpu/grid/filter"
	"github.com/gogpu/grid/matrix"
	"github.com/gogpu/grid/raster"
)

// config holds the parsed command line.
type config struct {
	in, out    string
	resize     string
	rotate     float64
	flip       string
	gray       bool
	invert     bool
	blur       int
	sigma      float64
	edges      bool
	edgeSize   int
	overlay    string
	over       bool
	dx, dy     int
	background string
	flatten    bool
	clusters   int
}

var errBadFlag = errors.New("invalid flag value")

func run(cfg config, logger *slog.Logger) error {
	img, err := grid.Load(cfg.in)
	if err != nil {
		return err
	}
	logger.Info("loaded", "path", cfg.in, "width", img.Width(), "height", img.Height())

	if cfg.resize != "" {
		w, h, err := parseSize(cfg.resize)
		if err != nil {
			return err
		}
		if err := raster.Resize(img, w, h); err != nil {
			return err
		}
	}
	if cfg.rotate != 0 {
		if err := raster.Rotate(img, cfg.rotate); err != nil {
			return err
		}
	}
	if cfg.flip != "" {
		axis, err := parseAxis(cfg.flip)
		if err != nil {
			return err
		}
		if err := raster.Flip(img, axis); err != nil {
			return err
		}
	}
	if cfg.gray {
		img = img.Grayscale()
	}
	if cfg.invert {
		img.Invert()
	}
	if cfg.blur > 0 {
		if err := blur(img, cfg.blur, cfg.sigma); err != nil {
			return err
		}
	}
	if cfg.edges {
		if img, err = edges(img, cfg.edgeSize, cfg.sigma); err != nil {
			return err
		}
	}
	if cfg.overlay != "" {
		top, err := grid.Load(cfg.overlay)
		if err != nil {
			return err
		}
		dir := grid.Under
		if cfg.over {
			dir = grid.Over
		}
		img.Blend(top, grid.WithDirection(dir), grid.WithOffset(cfg.dx, cfg.dy))
	}
	if cfg.background != "" {
		fill, err := parseBackground(cfg.background)
		if err != nil {
			return err
		}
		bg, err := grid.Blank(img.Width(), img.Height(), fill)
		if err != nil {
			return err
		}
		img.Blend(bg, grid.WithDirection(grid.Over))
	}
	if cfg.flatten {
		img.Flatten()
	}
	if cfg.clusters > 0 {
		res, err := cluster.KMeans(opaquePoints(img), cfg.clusters)
		if err != nil {
			return err
		}
		for i, c := range res.Centers {
			logger.Info("cluster", "index", i, "x", c.X, "y", c.Y, "size", len(res.Clusters[i]))
		}
	}

	if err := img.Save(cfg.out); err != nil {
		return err
	}
	logger.Info("saved", "path", cfg.out, "width", img.Width(), "height", img.Height(), "mode", img.Mode())
	return nil
}

// blur convolves img with a Gaussian kernel scaled to sum to one.
func blur(img *grid.Image, size int, sigma float64) error {
	k, err := filter.GaussianKernel(size, sigma, filter.NoDerivative)
	if err != nil {
		return err
	}
	var sum float64
	for _, row := range k {
		sum += floats.Sum(row)
	}
	if k, err = matrix.Divide(k, matrix.Scalar(sum)); err != nil {
		return err
	}
	return img.Filter(k)
}

// edges returns the gradient magnitude of img's luminance, stretched to
// [0, 255], as a gray image with img's alpha.
func edges(img *grid.Image, size int, sigma float64) (*grid.Image, error) {
	gray := img.Grayscale()
	gx, err := filter.Gauss(gray.Gray(), size, sigma, filter.DerivativeX)
	if err != nil {
		return nil, err
	}
	gy, err := filter.Gauss(gray.Gray(), size, sigma, filter.DerivativeY)
	if err != nil {
		return nil, err
	}
	if gx, err = matrix.Square(gx); err != nil {
		return nil, err
	}
	if gy, err = matrix.Square(gy); err != nil {
		return nil, err
	}
	mag, err := matrix.Add(gx, gy)
	if err != nil {
		return nil, err
	}
	if mag, err = matrix.Sqrt(mag); err != nil {
		return nil, err
	}
	if _, err := matrix.Normalize(mag, 0, 255); err != nil {
		return nil, err
	}
	return grid.NewGray(mag, gray.Alpha())
}

// opaquePoints lists the coordinates of pixels with alpha above one half.
func opaquePoints(img *grid.Image) []cluster.Point {
	var pts []cluster.Point
	for y, row := range img.Alpha() {
		for x, a := range row {
			if a > 0.5 {
				pts = append(pts, cluster.Point{X: float64(x), Y: float64(y)})
			}
		}
	}
	return pts
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", errBadFlag, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", errBadFlag, s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", errBadFlag, s, err)
	}
	return w, h, nil
}

func parseAxis(s string) (raster.Axis, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return raster.Horizontal, nil
	case "v", "vertical":
		return raster.Vertical, nil
	case "both":
		return raster.Both, nil
	default:
		return 0, fmt.Errorf("%w: flip %q", errBadFlag, s)
	}
}

// parseBackground parses a "#rrggbb" hex color into an opaque fill.
func parseBackground(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: background: %v", errBadFlag, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
