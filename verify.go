package kform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is the verification tolerance used when a caller has no
// stricter requirement. It matches the solver's internal diagnostic
// threshold.
const DefaultTolerance = 1e-10

// Verify recomputes the constraint value for a candidate solution x and
// compares it to the target b:
//
//	residual = |sum(a_i * x_i^p_i) - b|
//	isValid  = residual < tolerance
//
// The comparison is strictly less-than: a residual exactly equal to the
// tolerance is NOT valid.
//
// Unlike Solve, Verify performs no domain checks on the power terms. A NaN
// anywhere in the inputs (for example a fractional power of a negative
// base) propagates through the sum, the residual becomes NaN, and since NaN
// compares false against any threshold the result is isValid=false with a
// NaN residual. This is deliberate: Verify reports on whatever vector it is
// handed, it does not gatekeep.
//
// Fails with ErrShape when the three vectors do not share one positive
// length.
func Verify(x, a, p []float64, b, tolerance float64) (isValid bool, residual float64, err error) {
	if len(x) != len(a) {
		return false, 0, fmt.Errorf("%w: len(x)=%d, len(a)=%d", ErrShape, len(x), len(a))
	}
	value, err := ConstraintValue(x, a, p)
	if err != nil {
		return false, 0, err
	}
	residual = math.Abs(value - b)
	return residual < tolerance, residual, nil
}

// ConstraintValue computes sum(a_i * x_i^p_i), the left-hand side of the
// constraint. Verify and the example programs share it.
//
// Fails with ErrShape when lengths differ or are zero.
func ConstraintValue(x, a, p []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty input vectors", ErrShape)
	}
	if len(a) != n || len(p) != n {
		return 0, fmt.Errorf("%w: len(x)=%d, len(a)=%d, len(p)=%d", ErrShape, n, len(a), len(p))
	}

	terms := make([]float64, n)
	for i := range terms {
		terms[i] = a[i] * math.Pow(x[i], p[i])
	}
	return floats.Sum(terms), nil
}
