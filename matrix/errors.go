package matrix

import (
	"errors"
	"fmt"
)

// Common errors for matrix operations.
var (
	// ErrInvalidArgument is the sentinel wrapped by every ArgumentError.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions is returned when two cooperating matrices differ in shape.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")
)

// ArgumentError reports an argument whose shape does not match what an
// operation expects. It is returned before any computation starts, so the
// inputs of a rejected call are never modified.
type ArgumentError struct {
	// Op is the operation name, e.g. "matrix.Add".
	Op string
	// Param is the offending parameter name.
	Param string
	// Expected lists the accepted kinds, e.g. "two-dimensional array".
	Expected string
	// Actual describes what was given.
	Actual string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("[%s] %s should be %s, but %s is given.", e.Op, e.Param, e.Expected, e.Actual)
}

// Unwrap returns ErrInvalidArgument so callers can use errors.Is.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// shapeName classifies m the way ArgumentError reports it.
func shapeName(m Matrix) string {
	switch {
	case m == nil:
		return "nil"
	case len(m) == 0:
		return "empty array"
	case len(m[0]) == 0:
		return "array of empty rows"
	}
	w := len(m[0])
	for _, row := range m[1:] {
		if len(row) != w {
			return "ragged array"
		}
	}
	return "two-dimensional array"
}
