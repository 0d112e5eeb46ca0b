package kform

import (
	"fmt"
	"math"
)

// residualWarnThreshold triggers the non-fatal diagnostic emitted after a
// solve. Exceeding it is not an error: the caller decides what residual is
// acceptable via Verify.
const residualWarnThreshold = 1e-10

// Solve computes the closed-form solution of the separable polynomial
// constraint
//
//	sum(a_i * x_i^p_i) = b
//
// by fixing every coordinate after the first through the shared parameter k
// and assigning the remaining residual to the first coordinate:
//
//	x_1 = ((b - (n-1)k) / a_1)^(1/p_1)
//	x_i = (k / a_i)^(1/p_i)           for i in [2, n]
//
// The construction is exact by substitution: each trailing term contributes
// exactly k to the sum, and the leading term absorbs b - (n-1)k. There is
// no iteration and no convergence check: the result is a pure function of
// the inputs up to floating-point rounding.
//
// The choice of k is the caller's responsibility. A k too large makes the
// leading base (b - (n-1)k)/a_1 negative, which has no real root under a
// fractional reciprocal exponent and is rejected (see ErrDomain). For n = 1
// the parameter is unused: x_1 = (b/a_1)^(1/p_1) regardless of k.
//
// Errors:
//   - ErrShape when len(a) != len(p) or the vectors are empty.
//   - ErrDomain when any a_i or p_i is zero, or when a negative base would
//     be raised to a non-integer reciprocal exponent.
func Solve(a, p []float64, b, k float64) ([]float64, error) {
	x := make([]float64, len(a))
	if err := SolveInto(x, a, p, b, k); err != nil {
		return nil, err
	}
	return x, nil
}

// SolveInto is the allocation-free form of Solve: the solution is written
// into dst, which must have the same length as a and p. Semantics are
// otherwise identical. On error dst is left unspecified.
func SolveInto(dst, a, p []float64, b, k float64) error {
	n := len(a)
	if n == 0 {
		return fmt.Errorf("%w: empty input vectors", ErrShape)
	}
	if len(p) != n {
		return fmt.Errorf("%w: len(a)=%d, len(p)=%d", ErrShape, n, len(p))
	}
	if len(dst) != n {
		return fmt.Errorf("%w: len(dst)=%d, want %d", ErrShape, len(dst), n)
	}

	for i := 0; i < n; i++ {
		if a[i] == 0 {
			return fmt.Errorf("%w: zero coefficient a[%d]", ErrDomain, i)
		}
		if p[i] == 0 {
			return fmt.Errorf("%w: zero exponent p[%d]", ErrDomain, i)
		}
	}

	// Leading coordinate absorbs the residual b - (n-1)k.
	if err := invPow(dst, 0, (b-float64(n-1)*k)/a[0], p[0]); err != nil {
		return err
	}

	// Trailing coordinates each contribute exactly k.
	for i := 1; i < n; i++ {
		if err := invPow(dst, i, k/a[i], p[i]); err != nil {
			return err
		}
	}

	// Diagnostic only. In exact arithmetic the residual is zero; a large
	// value here means the inputs are poorly scaled, not that the formula
	// failed.
	if resid := math.Abs(constraintSum(dst, a, p) - b); resid > residualWarnThreshold {
		logger.Warn("kform: solution residual exceeds threshold",
			"residual", resid, "threshold", residualWarnThreshold, "n", n)
	}

	return nil
}

// invPow writes base^(1/exp) into dst[i].
//
// A negative base under a non-integer reciprocal exponent has no real root
// (math.Pow would yield NaN); that case is rejected up front so a solution
// vector never carries NaN. This is the single negative-base convention for
// the package: Solve fails loudly, Verify propagates NaN (see Verify).
func invPow(dst []float64, i int, base, exp float64) error {
	recip := 1.0 / exp
	if base < 0 && recip != math.Trunc(recip) {
		return fmt.Errorf("%w: no real root for base %v with exponent 1/%v at index %d",
			ErrDomain, base, exp, i)
	}
	dst[i] = math.Pow(base, recip)
	return nil
}

// constraintSum accumulates sum(a_i * x_i^p_i) without allocating.
// The exported ConstraintValue is the checked, gonum-backed variant.
func constraintSum(x, a, p []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += a[i] * math.Pow(x[i], p[i])
	}
	return sum
}
