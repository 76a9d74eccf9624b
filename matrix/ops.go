package matrix

import "math"

// Add returns a + b, cell by cell.
func Add(a, b Matrix) (Matrix, error) {
	if err := checkPair("matrix.Add", a, b); err != nil {
		return nil, err
	}
	return zipWith(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Subtract returns a - b, cell by cell.
func Subtract(a, b Matrix) (Matrix, error) {
	if err := checkPair("matrix.Subtract", a, b); err != nil {
		return nil, err
	}
	return zipWith(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Multiply returns a * b, where b is a same-shape Matrix or a Scalar.
func Multiply(a Matrix, b Operand) (Matrix, error) {
	switch v := b.(type) {
	case Scalar:
		if err := a.validate("matrix.Multiply", "a"); err != nil {
			return nil, err
		}
		s := float64(v)
		return mapCells(a, func(x float64) float64 { return x * s }), nil
	case Matrix:
		if err := checkPair("matrix.Multiply", a, v); err != nil {
			return nil, err
		}
		return zipWith(a, v, func(x, y float64) float64 { return x * y }), nil
	default:
		return nil, operandError("matrix.Multiply")
	}
}

// Divide returns a / b, where b is a same-shape Matrix or a Scalar.
// A zero denominator yields +Inf, -Inf or NaN; use DivideOr to substitute
// a value instead.
func Divide(a Matrix, b Operand) (Matrix, error) {
	return divide("matrix.Divide", a, b, nil)
}

// DivideOr is like Divide but stores def wherever the denominator is exactly zero.
func DivideOr(a Matrix, b Operand, def float64) (Matrix, error) {
	return divide("matrix.DivideOr", a, b, &def)
}

func divide(op string, a Matrix, b Operand, def *float64) (Matrix, error) {
	quo := func(x, d float64) float64 {
		if def != nil && d == 0 {
			return *def
		}
		return x / d
	}
	switch v := b.(type) {
	case Scalar:
		if err := a.validate(op, "a"); err != nil {
			return nil, err
		}
		d := float64(v)
		return mapCells(a, func(x float64) float64 { return quo(x, d) }), nil
	case Matrix:
		if err := checkPair(op, a, v); err != nil {
			return nil, err
		}
		return zipWith(a, v, quo), nil
	default:
		return nil, operandError(op)
	}
}

// Abs returns |a| cell by cell.
func Abs(a Matrix) (Matrix, error) {
	if err := a.validate("matrix.Abs", "a"); err != nil {
		return nil, err
	}
	return mapCells(a, math.Abs), nil
}

// Square returns a² cell by cell.
func Square(a Matrix) (Matrix, error) {
	if err := a.validate("matrix.Square", "a"); err != nil {
		return nil, err
	}
	return mapCells(a, func(x float64) float64 { return x * x }), nil
}

// Sqrt returns √a cell by cell. Negative cells become NaN.
func Sqrt(a Matrix) (Matrix, error) {
	if err := a.validate("matrix.Sqrt", "a"); err != nil {
		return nil, err
	}
	return mapCells(a, math.Sqrt), nil
}

// checkPair validates both operands of a binary operation and their shapes.
func checkPair(op string, a, b Matrix) error {
	if err := a.validate(op, "a"); err != nil {
		return err
	}
	if err := b.validate(op, "b"); err != nil {
		return err
	}
	if !SameShape(a, b) {
		return ErrInvalidDimensions
	}
	return nil
}

func operandError(op string) error {
	return &ArgumentError{Op: op, Param: "b", Expected: "two-dimensional array or number", Actual: "nil"}
}

func mapCells(a Matrix, f func(float64) float64) Matrix {
	out := make(Matrix, len(a))
	for y, row := range a {
		r := make([]float64, len(row))
		for x, v := range row {
			r[x] = f(v)
		}
		out[y] = r
	}
	return out
}

func zipWith(a, b Matrix, f func(x, y float64) float64) Matrix {
	out := make(Matrix, len(a))
	for y, row := range a {
		r := make([]float64, len(row))
		other := b[y]
		for x, v := range row {
			r[x] = f(v, other[x])
		}
		out[y] = r
	}
	return out
}
