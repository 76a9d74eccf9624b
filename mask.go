package grid

import "fmt"

// ApplyAlphaMask replaces the alpha plane of img, pixel for pixel, with the
// alpha plane of mask. Both images must have the same size; otherwise
// ErrInvalidDimensions is returned and img is left untouched.
func (img *Image) ApplyAlphaMask(mask *Image) error {
	if mask.width != img.width || mask.height != img.height {
		return fmt.Errorf("%w: mask is %dx%d, image is %dx%d",
			ErrInvalidDimensions, mask.width, mask.height, img.width, img.height)
	}
	for y, row := range mask.a {
		copy(img.a[y], row)
	}
	return nil
}
