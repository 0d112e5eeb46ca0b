package kform

import (
	"errors"
	"math"
	"testing"
)

// TestVerify_StrictToleranceBoundary pins the comparison direction: a
// residual exactly equal to the tolerance is NOT valid. The residual here
// is exactly 1.0 (|2¹ - 1|), representable without rounding.
func TestVerify_StrictToleranceBoundary(t *testing.T) {
	x := []float64{2}
	a := []float64{1}
	p := []float64{1}

	ok, residual, err := Verify(x, a, p, 1, 1.0)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if residual != 1.0 {
		t.Fatalf("Expected residual exactly 1.0, got %v", residual)
	}

	if ok {
		t.Errorf("residual == tolerance must be invalid (strict less-than)")
	}

	// One ulp below the residual flips the result.
	ok, _, err = Verify(x, a, p, 1, math.Nextafter(1.0, 2.0))
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Errorf("residual < tolerance must be valid")
	}

	t.Logf("✓ Boundary is strict: residual 1.0 invalid at tolerance 1.0")
}

// TestVerify_NaNPropagation feeds Verify a vector requiring a fractional
// power of a negative base. The residual becomes NaN, NaN compares false
// against any threshold, and the solution is reported invalid.
func TestVerify_NaNPropagation(t *testing.T) {
	x := []float64{-2, 1}
	a := []float64{1, 1}
	p := []float64{0.5, 2}

	ok, residual, err := Verify(x, a, p, 10, DefaultTolerance)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if ok {
		t.Errorf("NaN residual must never validate")
	}

	if !math.IsNaN(residual) {
		t.Errorf("Expected NaN residual, got %v", residual)
	}

	// Same with an explicit NaN in the candidate vector.
	ok, residual, err = Verify([]float64{math.NaN(), 1}, a, []float64{2, 2}, 10, DefaultTolerance)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok || !math.IsNaN(residual) {
		t.Errorf("Expected invalid with NaN residual, got ok=%v residual=%v", ok, residual)
	}

	t.Logf("✓ NaN propagation: isValid=false, residual=NaN")
}

func TestVerify_ShapeErrors(t *testing.T) {
	a := []float64{1, 1}
	p := []float64{2, 2}

	if _, _, err := Verify([]float64{1}, a, p, 10, DefaultTolerance); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for len(x) != len(a), got: %v", err)
	}

	if _, _, err := Verify([]float64{1, 1}, a, []float64{2}, 10, DefaultTolerance); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for len(a) != len(p), got: %v", err)
	}

	if _, _, err := Verify(nil, nil, nil, 10, DefaultTolerance); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for empty vectors, got: %v", err)
	}
}

func TestConstraintValue(t *testing.T) {
	// 2·3² + 0.5·2³ = 18 + 4 = 22
	value, err := ConstraintValue([]float64{3, 2}, []float64{2, 0.5}, []float64{2, 3})
	if err != nil {
		t.Fatalf("ConstraintValue failed: %v", err)
	}

	if math.Abs(value-22) > 1e-12 {
		t.Errorf("Expected 22, got %v", value)
	}

	if _, err := ConstraintValue([]float64{1}, []float64{1, 1}, []float64{2, 2}); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape, got: %v", err)
	}

	t.Logf("✓ ConstraintValue: 2·3² + 0.5·2³ = %v", value)
}

// TestVerify_DoesNotMutateInputs guards the purity contract.
func TestVerify_DoesNotMutateInputs(t *testing.T) {
	x := []float64{1, 2, 3}
	a := []float64{1, 1, 1}
	p := []float64{2, 2, 2}

	if _, _, err := Verify(x, a, p, 14, DefaultTolerance); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	for i, want := range []float64{1, 2, 3} {
		if x[i] != want {
			t.Errorf("Verify mutated x[%d]: got %v, want %v", i, x[i], want)
		}
	}
}
