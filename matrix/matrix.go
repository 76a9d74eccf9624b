// Package matrix provides elementwise algebra on two-dimensional numeric arrays.
//
// A Matrix is a slice of equally long rows, indexed as m[y][x]. The same type
// backs image channel planes, convolution kernels and general numeric work, so
// every operation here is independent of image semantics.
//
// Operations allocate a fresh result and never modify their inputs, except
// Normalize and Cutoff, which rewrite the receiver in place and return it.
//
// Numeric degeneracies are not errors: division by zero without a default and
// normalizing a constant matrix propagate Inf and NaN as IEEE-754 dictates.
package matrix

// Matrix is a rectangular two-dimensional array of float64, stored row-major.
type Matrix [][]float64

// Operand is the second argument of Multiply and Divide: either a Scalar
// broadcast to every cell or a Matrix of the same shape.
type Operand interface {
	operand()
}

// Scalar is a single value broadcast across a whole matrix.
type Scalar float64

func (Scalar) operand() {}
func (Matrix) operand() {}

// Ones allocates a width×height matrix with every cell set to value.
func Ones(width, height int, value float64) (Matrix, error) {
	if width <= 0 {
		return nil, &ArgumentError{Op: "matrix.Ones", Param: "width", Expected: "positive number", Actual: "non-positive number"}
	}
	if height <= 0 {
		return nil, &ArgumentError{Op: "matrix.Ones", Param: "height", Expected: "positive number", Actual: "non-positive number"}
	}
	return fill(width, height, value), nil
}

// Zeros allocates a zero-filled width×height matrix.
func Zeros(width, height int) (Matrix, error) {
	return Ones(width, height, 0)
}

// OnesLike allocates a matrix shaped like template with every cell set to value.
func OnesLike(template Matrix, value float64) (Matrix, error) {
	if err := template.validate("matrix.OnesLike", "template"); err != nil {
		return nil, err
	}
	return fill(template.Width(), template.Height(), value), nil
}

// ZerosLike allocates a zero-filled matrix shaped like template.
func ZerosLike(template Matrix) (Matrix, error) {
	if err := template.validate("matrix.ZerosLike", "template"); err != nil {
		return nil, err
	}
	return fill(template.Width(), template.Height(), 0), nil
}

func fill(width, height int, value float64) Matrix {
	m := make(Matrix, height)
	for y := range m {
		row := make([]float64, width)
		if value != 0 {
			for x := range row {
				row[x] = value
			}
		}
		m[y] = row
	}
	return m
}

// Width returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Validate reports whether m is a non-empty rectangular matrix.
// The returned error, if any, is an *ArgumentError naming op and param.
func (m Matrix) Validate(op, param string) error {
	return m.validate(op, param)
}

func (m Matrix) validate(op, param string) error {
	if s := shapeName(m); s != "two-dimensional array" {
		return &ArgumentError{Op: op, Param: param, Expected: "two-dimensional array", Actual: s}
	}
	return nil
}

// SameShape reports whether a and b have identical width and height.
func SameShape(a, b Matrix) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	c := make(Matrix, len(m))
	for y, row := range m {
		c[y] = append([]float64(nil), row...)
	}
	return c
}

// Equal reports whether a and b have the same shape and identical cells.
// NaN cells never compare equal.
func Equal(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
