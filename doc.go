// Package kform solves separable polynomial constraints in closed form.
//
// # Overview
//
// kform computes an exact, non-iterative solution to constraints of the form
//
//	sum(a_i * x_i^p_i) = b
//
// using the parametric k-formula: every coordinate after the first is fixed
// through a caller-supplied parameter k, and the first coordinate absorbs
// whatever residual remains. The result is a pure O(n) evaluation with no
// search, no convergence criterion, and no randomness.
//
// # Quick Start
//
// Solve an L2-type constraint x₁² + x₂² + x₃² = 10 with k = 1.5:
//
//	a := []float64{1, 1, 1}
//	p := []float64{2, 2, 2}
//	x, err := kform.Solve(a, p, 10, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// x ≈ [2.6458, 1.2247, 1.2247]
//
//	ok, residual, err := kform.Verify(x, a, p, 10, kform.DefaultTolerance)
//	// ok == true, residual < 1e-10
//
// # Choosing k
//
// The engine treats k as opaque: it determines the shared magnitude of
// x_2 … x_n, and its choice is entirely the caller's. Feasibility of the
// first coordinate depends on it: the leading base (b - (n-1)k)/a_1 must be
// non-negative whenever the reciprocal exponent 1/p_1 is fractional. A
// common heuristic for uniform problems is k = b/n, which spreads the
// constraint evenly (see examples/regularization).
//
// # Numeric Conventions
//
// Fractional powers of negative bases have no real value. Solve rejects
// them with ErrDomain before exponentiation, so a returned solution never
// contains NaN. Verify takes the opposite stance: it reports on whatever
// vector it is given, a NaN propagates into the residual, and the solution
// is simply reported invalid. Zero coefficients and zero exponents are
// ErrDomain; mismatched or empty vectors are ErrShape. Both sentinels are
// matched with errors.Is.
//
// # Concurrency
//
// Solve and Verify are stateless pure functions over their own inputs and
// outputs. They are safe to call concurrently without synchronization.
//
// # Test Helpers
//
// The Assert* helpers verify solver properties inside your own tests:
//
//	kform.AssertRoundTrip(t, a, p, 10, 1.5)
//	kform.AssertNoRealRoot(t, a, p, 1, 40)
package kform
