package kform

import "errors"

// Sentinel errors returned by the solver surface. Callers match them with
// errors.Is; the returned error carries additional context wrapped around
// the sentinel (index, offending value).
var (
	// ErrShape is returned when input vectors have mismatched lengths or
	// length zero. The formula is defined positionally over equal-length
	// coefficient and exponent vectors.
	ErrShape = errors.New("kform: shape mismatch")

	// ErrDomain is returned when the formula is mathematically undefined
	// for the given inputs: a zero coefficient (division by zero forming
	// k/a_i or the residual term), a zero exponent (reciprocal undefined),
	// or a fractional power of a negative base (no real root).
	ErrDomain = errors.New("kform: domain error")
)
