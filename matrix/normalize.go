package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize linearly rescales a in place so that its smallest cell maps to lo
// and its largest to hi, and returns a. Callers wanting the unit range pass 0, 1.
//
// A constant matrix has a zero-width range; every cell then becomes NaN.
func Normalize(a Matrix, lo, hi float64) (Matrix, error) {
	if err := a.validate("matrix.Normalize", "a"); err != nil {
		return nil, err
	}

	minValue, maxValue := math.Inf(1), math.Inf(-1)
	for _, row := range a {
		minValue = math.Min(minValue, floats.Min(row))
		maxValue = math.Max(maxValue, floats.Max(row))
	}

	span := maxValue - minValue
	for _, row := range a {
		for x, v := range row {
			row[x] = (v-minValue)*(hi-lo)/span + lo
		}
	}
	return a, nil
}

// Cutoff clamps every cell of a to at most limit, in place, and returns a.
// There is no lower bound.
func Cutoff(a Matrix, limit float64) (Matrix, error) {
	if err := a.validate("matrix.Cutoff", "a"); err != nil {
		return nil, err
	}
	for _, row := range a {
		for x, v := range row {
			if v > limit {
				row[x] = limit
			}
		}
	}
	return a, nil
}
