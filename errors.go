package grid

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when a byte buffer does not match the
	// declared size, or when two images that must align differ in size.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrSharedPlanes is returned when planes handed to a constructor share
	// storage.
	ErrSharedPlanes = errors.New("grid: planes share storage")

	// ErrNoOrigin is returned by Commit on an image that was not created by Region.
	ErrNoOrigin = errors.New("grid: image has no origin")
)
