// Package grid provides pixel-level image processing for Go.
//
// # Overview
//
// grid decomposes an image into per-channel numeric planes plus an alpha
// plane, so that filters can be written as plain array arithmetic: load an
// image, pull out its channels, run them through convolutions and elementwise
// algebra, and put the result back.
//
// # Quick Start
//
//	import "github.com/gogpu/grid"
//
//	img, err := grid.Load("photo.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gray := img.Grayscale()
//	gx, _ := filter.Gauss(gray.Gray(), 5, 1, filter.DerivativeX)
//	gy, _ := filter.Gauss(gray.Gray(), 5, 1, filter.DerivativeY)
//
//	gx2, _ := matrix.Square(gx)
//	gy2, _ := matrix.Square(gy)
//	sum, _ := matrix.Add(gx2, gy2)
//	edges, _ := matrix.Sqrt(sum)
//	matrix.Normalize(edges, 0, 255)
//
//	out, _ := grid.NewGray(edges, gray.Alpha())
//	out.Save("edges.png")
//
// # Architecture
//
// The module is organized into:
//   - grid: Image (color or gray planes plus alpha), compositing, masking,
//     regions and conversion to and from image.Image
//   - matrix: elementwise algebra on two-dimensional arrays
//   - filter: boundary-truncating convolution and Gaussian kernels
//   - cluster: k-means over 2D points
//   - raster: resampling, rotation, cropping, flipping and affine warps,
//     performed by round-tripping an Image through RGBA bytes
//
// # Pixel Model
//
// Color planes hold values in [0, 255], alpha holds [0, 1] and is not
// premultiplied. A gray image has a single plane that serves as red, green
// and blue at once.
//
// # Coordinate System
//
// Uses standard image coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Planes are indexed plane[y][x]
//
// # Concurrency
//
// All operations are synchronous. Images and matrices are owned by the
// caller and must not be mutated from several goroutines at once.
package grid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
