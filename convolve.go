package grid

import (
	"github.com/gogpu/grid/filter"
	"github.com/gogpu/grid/matrix"
)

// Filter convolves every color plane of img with kernel, rounding and
// clamping the results to [0, 255]. Alpha is untouched. The kernel is
// validated before any plane is modified.
func (img *Image) Filter(kernel matrix.Matrix) error {
	planes := img.planes()
	out := make([]matrix.Matrix, len(planes))
	for i, p := range planes {
		c, err := filter.Convolve(p, kernel)
		if err != nil {
			return err
		}
		out[i] = c
	}

	for i, p := range planes {
		for y, row := range out[i] {
			for x, v := range row {
				p[y][x] = float64(toByte(v))
			}
		}
	}
	return nil
}
