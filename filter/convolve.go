package filter

import "github.com/gogpu/grid/matrix"

// Convolve returns src convolved with kernel. The result has the shape of src.
//
// For output cell (x, y) the kernel cell (mx, my) reads
// src[y-KernelCenter(kh)+my][x-KernelCenter(kw)+mx]; reads that fall outside
// src contribute nothing. Kernels of any size are accepted.
func Convolve(src, kernel matrix.Matrix) (matrix.Matrix, error) {
	if err := src.Validate("filter.Convolve", "src"); err != nil {
		return nil, err
	}
	if err := kernel.Validate("filter.Convolve", "kernel"); err != nil {
		return nil, err
	}

	width := src.Width()
	height := src.Height()
	kernelWidth := kernel.Width()
	kernelHeight := kernel.Height()
	halfX := KernelCenter(kernelWidth)
	halfY := KernelCenter(kernelHeight)

	out := make(matrix.Matrix, height)
	for y := 0; y < height; y++ {
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for my := 0; my < kernelHeight; my++ {
				cy := y - halfY + my
				if cy < 0 || cy >= height {
					continue
				}
				srcRow := src[cy]
				kernelRow := kernel[my]
				for mx := 0; mx < kernelWidth; mx++ {
					cx := x - halfX + mx
					if cx < 0 || cx >= width {
						continue
					}
					sum += srcRow[cx] * kernelRow[mx]
				}
			}
			row[x] = sum
		}
		out[y] = row
	}

	return out, nil
}
