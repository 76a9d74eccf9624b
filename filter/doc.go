// Package filter provides convolution and Gaussian kernel synthesis for
// two-dimensional numeric arrays.
//
// This package contains:
//   - Generic 2D convolution with boundary truncation
//   - Square Gaussian kernels and their first and mixed second derivatives
//
// Convolution drops every kernel contribution that falls outside the source
// array. Nothing is padded, clamped or wrapped, so cells near the border
// receive a partial sum unless the kernel compensates for it.
//
// Kernels are built one quadrant at a time; the other three quadrants are
// mirrored from it with the sign pattern of the requested derivative.
package filter
