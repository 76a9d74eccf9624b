// Package raster applies geometric transforms to grid images.
//
// Every operation renders the image to non-premultiplied RGBA bytes, hands
// them to a resampler and reads the result back with (*grid.Image).Refresh,
// so color and alpha planes stay aligned and a gray image stays gray.
// Resampled values are therefore quantized to whole bytes.
//
// Resize, Rotate, Crop and Flip use bild's transform package. Affine and
// AffineCorners warp with the bilinear kernel from golang.org/x/image/draw.
//
// Angles are in degrees; positive angles rotate counterclockwise.
package raster
