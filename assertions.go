package kform

import (
	"errors"
	"math"
	"testing"
)

// AssertSatisfies verifies that x satisfies the constraint defined by
// (a, p, b) within tol. Use it to check solutions that did not come from
// Solve (hand-constructed vectors, values read from another system).
func AssertSatisfies(t *testing.T, x, a, p []float64, b, tol float64) {
	t.Helper()

	ok, residual, err := Verify(x, a, p, b, tol)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if !ok {
		t.Errorf("Constraint violated: residual = %.3e (tolerance: %.3e)", residual, tol)
		return
	}

	t.Logf("✓ Constraint satisfied: residual = %.3e < %.3e", residual, tol)
}

// AssertRoundTrip verifies the defining property of the solver: a solution
// produced by Solve satisfies the original constraint within
// DefaultTolerance.
//
// Mathematical property:
//
//	Verify(Solve(a, p, b, k), a, p, b) == valid
//
// holds for every input where all exponentiation bases are non-negative.
func AssertRoundTrip(t *testing.T, a, p []float64, b, k float64) []float64 {
	t.Helper()

	x, err := Solve(a, p, b, k)
	if err != nil {
		t.Fatalf("Solve(a, p, b=%v, k=%v) failed: %v", b, k, err)
	}

	ok, residual, err := Verify(x, a, p, b, DefaultTolerance)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if !ok {
		t.Errorf("Round-trip broken: residual = %.3e (tolerance: %.3e)\n"+
			"Solve produced a vector that does not satisfy its own constraint.",
			residual, DefaultTolerance)
		return x
	}

	t.Logf("✓ Round-trip: n=%d, b=%v, k=%v, residual = %.3e", len(a), b, k, residual)
	return x
}

// AssertNoRealRoot verifies that Solve deterministically rejects inputs
// requiring a fractional power of a negative base, instead of leaking NaN
// into the solution.
func AssertNoRealRoot(t *testing.T, a, p []float64, b, k float64) {
	t.Helper()

	x, err := Solve(a, p, b, k)
	if err == nil {
		t.Errorf("Expected domain error for b=%v, k=%v, got solution %v", b, k, x)
		return
	}

	if !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain, got: %v", err)
		return
	}

	t.Logf("✓ No real root rejected: %v", err)
}

// AssertIndependentOfK verifies the degenerate n=1 contract: the parameter
// k cannot influence a single-variable solution.
func AssertIndependentOfK(t *testing.T, a1, p1, b float64, ks []float64) {
	t.Helper()

	want := math.Pow(b/a1, 1/p1)
	for _, k := range ks {
		x, err := Solve([]float64{a1}, []float64{p1}, b, k)
		if err != nil {
			t.Fatalf("Solve(n=1, k=%v) failed: %v", k, err)
		}
		if x[0] != want {
			t.Errorf("n=1 solution depends on k: got %v with k=%v, want %v", x[0], k, want)
		}
	}

	t.Logf("✓ n=1 solution independent of k across %d values: x = %v", len(ks), want)
}
