package filter

import (
	"math"

	"github.com/gogpu/grid/matrix"
)

// Derivative selects which Gaussian partial derivative a kernel samples.
type Derivative int

const (
	// NoDerivative produces the plain isotropic Gaussian, left unnormalized.
	NoDerivative Derivative = -1
	// DerivativeX produces the first partial derivative along x.
	DerivativeX Derivative = 0
	// DerivativeY produces the first partial derivative along y.
	DerivativeY Derivative = 1
	// DerivativeXY produces the mixed second partial derivative.
	DerivativeXY Derivative = 2
)

// String returns the derivative name.
func (d Derivative) String() string {
	switch d {
	case NoDerivative:
		return "none"
	case DerivativeX:
		return "x"
	case DerivativeY:
		return "y"
	case DerivativeXY:
		return "xy"
	default:
		return "unknown"
	}
}

// KernelCenter returns the index of the center cell of a kernel dimension,
// round(size/2) - 1. Odd sizes get the true middle; even sizes the cell just
// before it.
func KernelCenter(size int) int {
	return (size+1)/2 - 1
}

// GaussianKernel generates a size×size Gaussian kernel.
//
// The top-left quadrant (both indices below round(size/2)) is sampled with
// dx = x-round(size/2)+1 and dy likewise:
//
//	NoDerivative:  exp(-(dx²+dy²)/2σ²) / σ
//	DerivativeX:  -dx·exp(-(dx²+dy²)/2σ²) / σ³
//	DerivativeY:  -dy·exp(-(dx²+dy²)/2σ²) / σ³
//	DerivativeXY:  dx·dy·exp(-(dx²+dy²)/2σ²) / σ⁵
//
// The remaining quadrants are mirror images, negated where the derivative is
// odd along the mirrored axis. Derivative kernels are divided by the sum of
// absolute values of all cells; the plain Gaussian is returned as sampled.
//
// A sigma of 0 is treated as 1.
func GaussianKernel(size int, sigma float64, d Derivative) (matrix.Matrix, error) {
	if size <= 0 {
		return nil, &matrix.ArgumentError{Op: "filter.GaussianKernel", Param: "size", Expected: "positive number", Actual: "non-positive number"}
	}
	if d < NoDerivative || d > DerivativeXY {
		return nil, &matrix.ArgumentError{Op: "filter.GaussianKernel", Param: "derivative", Expected: "0, 1, 2 or none", Actual: "unknown derivative"}
	}
	if sigma == 0 {
		sigma = 1
	}

	// Which mirror operations flip the sign.
	negVertical := d == DerivativeY || d == DerivativeXY
	negHorizontal := d == DerivativeX || d == DerivativeXY
	negDiagonal := d == DerivativeX || d == DerivativeY

	halfSize := (size + 1) / 2
	twoSigmaSq := 2 * sigma * sigma
	sigma3 := sigma * sigma * sigma
	sigma5 := sigma3 * sigma * sigma

	kernel := make(matrix.Matrix, size)
	for y := range kernel {
		kernel[y] = make([]float64, size)
	}

	var sum float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var v float64
			switch {
			case x < halfSize && y < halfSize:
				dx := float64(x - halfSize + 1)
				dy := float64(y - halfSize + 1)
				g := math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
				switch d {
				case DerivativeX:
					v = -dx * g / sigma3
				case DerivativeY:
					v = -dy * g / sigma3
				case DerivativeXY:
					v = dx * dy * g / sigma5
				default:
					v = g / sigma
				}
			case x < halfSize:
				v = mirror(kernel[size-y-1][x], negVertical)
			case y < halfSize:
				v = mirror(kernel[y][size-x-1], negHorizontal)
			default:
				v = mirror(kernel[size-y-1][size-x-1], negDiagonal)
			}
			kernel[y][x] = v
			sum += math.Abs(v)
		}
	}

	if d != NoDerivative {
		for _, row := range kernel {
			for x := range row {
				row[x] /= sum
			}
		}
	}

	return kernel, nil
}

func mirror(v float64, negate bool) float64 {
	if negate {
		return -v
	}
	return v
}

// Gauss convolves src with GaussianKernel(size, sigma, d).
func Gauss(src matrix.Matrix, size int, sigma float64, d Derivative) (matrix.Matrix, error) {
	kernel, err := GaussianKernel(size, sigma, d)
	if err != nil {
		return nil, err
	}
	return Convolve(src, kernel)
}
