package main

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/raster"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"640x480", 640, 480, false},
		{"32X16", 32, 16, false},
		{"640", 0, 0, true},
		{"ax3", 0, 0, true},
		{"3xb", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errBadFlag) {
					t.Errorf("parseSize(%q) error = %v, want errBadFlag", tt.in, err)
				}
				return
			}
			if err != nil || w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %d, %d, %v", tt.in, w, h, err)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]raster.Axis{
		"h":          raster.Horizontal,
		"Horizontal": raster.Horizontal,
		"v":          raster.Vertical,
		"both":       raster.Both,
	} {
		if got, err := parseAxis(in); err != nil || got != want {
			t.Errorf("parseAxis(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseAxis("diagonal"); !errors.Is(err, errBadFlag) {
		t.Errorf("parseAxis(diagonal) error = %v, want errBadFlag", err)
	}
}

func TestParseBackground(t *testing.T) {
	for _, in := range []string{"#336699", "336699"} {
		got, err := parseBackground(in)
		if err != nil {
			t.Fatalf("parseBackground(%q) = %v", in, err)
		}
		if want := (color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}); got != want {
			t.Errorf("parseBackground(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseBackground("#zzz"); !errors.Is(err, errBadFlag) {
		t.Errorf("parseBackground(#zzz) error = %v, want errBadFlag", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	src, err := grid.Blank(8, 6, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Save(in); err != nil {
		t.Fatal(err)
	}

	cfg := config{
		in:         in,
		out:        out,
		resize:     "4x3",
		flip:       "both",
		gray:       true,
		blur:       3,
		sigma:      1,
		background: "#000000",
		clusters:   2,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(cfg, logger); err != nil {
		t.Fatalf("run() = %v", err)
	}

	res, err := grid.Load(out)
	if err != nil {
		t.Fatalf("Load(out) = %v", err)
	}
	if res.Width() != 4 || res.Height() != 3 {
		t.Errorf("output size = %dx%d, want 4x3", res.Width(), res.Height())
	}
	if a := res.Alpha()[1][1]; a != 1 {
		t.Errorf("output alpha = %v, want 1 after background", a)
	}
}

func TestRunEdges(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "edges.png")

	src, err := grid.Blank(6, 6, color.NRGBA{A: 255})
	if err != nil {
		t.Fatal(err)
	}
	patch, err := grid.Blank(3, 6, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		t.Fatal(err)
	}
	src.Paste(patch, 3, 0)
	if err := src.Save(in); err != nil {
		t.Fatal(err)
	}

	cfg := config{in: in, out: out, edges: true, edgeSize: 3, sigma: 1}
	if err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("run() = %v", err)
	}
	res, err := grid.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	// The strongest response sits on the black to white step.
	if res.R()[3][0] >= res.R()[3][2] {
		t.Errorf("edge response %v at the border, %v at the step", res.R()[3][0], res.R()[3][2])
	}
}

func TestRunMissingInput(t *testing.T) {
	cfg := config{in: filepath.Join(t.TempDir(), "none.png"), out: "x.png"}
	if err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Error("run() with missing input should fail")
	}
}
