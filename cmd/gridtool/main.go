// Command gridtool runs a grid processing pipeline over one image.
//
// Steps run in a fixed order: resize, rotate, flip, grayscale, invert, blur,
// edges, overlay, background, flatten. Each is enabled by its flag.
//
//	gridtool -in photo.png -out edges.png -edges -blur 5 -sigma 1.2
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/grid"
)

func main() {
	var (
		cfg     config
		verbose bool
	)
	flag.StringVar(&cfg.in, "in", "", "input image file")
	flag.StringVar(&cfg.out, "out", "out.png", "output file (format from extension)")
	flag.StringVar(&cfg.resize, "resize", "", "resize to WxH")
	flag.Float64Var(&cfg.rotate, "rotate", 0, "rotate counterclockwise by degrees")
	flag.StringVar(&cfg.flip, "flip", "", "mirror: horizontal, vertical or both")
	flag.BoolVar(&cfg.gray, "gray", false, "convert to grayscale")
	flag.BoolVar(&cfg.invert, "invert", false, "invert colors")
	flag.IntVar(&cfg.blur, "blur", 0, "Gaussian blur kernel size (0 disables)")
	flag.Float64Var(&cfg.sigma, "sigma", 1, "Gaussian sigma for -blur and -edges")
	flag.BoolVar(&cfg.edges, "edges", false, "replace the image by its gradient magnitude")
	flag.IntVar(&cfg.edgeSize, "edge-size", 5, "derivative kernel size for -edges")
	flag.StringVar(&cfg.overlay, "overlay", "", "image file to composite onto the input")
	flag.BoolVar(&cfg.over, "over", false, "put the input on top of -overlay")
	flag.IntVar(&cfg.dx, "dx", 0, "overlay x offset")
	flag.IntVar(&cfg.dy, "dy", 0, "overlay y offset")
	flag.StringVar(&cfg.background, "background", "", "composite over a solid hex color, e.g. #336699")
	flag.BoolVar(&cfg.flatten, "flatten", false, "composite over opaque white")
	flag.IntVar(&cfg.clusters, "clusters", 0, "report k-means centers of opaque pixels")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	grid.SetLogger(logger)

	if cfg.in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		log.Fatalf("gridtool: %v", err)
	}
}
