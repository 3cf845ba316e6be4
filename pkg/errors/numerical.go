package errors

import (
	"math"
)

// CheckFinite returns an InvalidSampleError for the first NaN or infinite
// value. Discretization needs a totally ordered finite domain: NaN breaks
// the sort and infinities have no midpoint with their neighbours.
func CheckFinite(operation string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return NewInvalidSampleError(operation, i, v, "NaN has no position on the real line")
		}
		if math.IsInf(v, 0) {
			return NewInvalidSampleError(operation, i, v, "infinite values cannot be bounded by a midpoint")
		}
	}
	return nil
}

// CheckClassCodes validates integer class codes against [0, nClasses).
// A non-positive nClasses only checks for negative codes.
func CheckClassCodes(operation string, codes []int, nClasses int) error {
	for i, c := range codes {
		if c < 0 {
			return NewInvalidSampleError(operation, i, float64(c), "class codes must be non-negative")
		}
		if nClasses > 0 && c >= nClasses {
			return NewInvalidSampleError(operation, i, float64(c), "class code out of range")
		}
	}
	return nil
}

// IsIntegral reports whether v holds an exact integer, the requirement for
// reading class codes out of a float64 matrix.
func IsIntegral(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}
