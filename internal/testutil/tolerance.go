// Package testutil provides shared tolerance helpers for numeric tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireComplexNearlyEqual fails t if |got-want| exceeds eps.
func RequireComplexNearlyEqual(t *testing.T, got, want complex128, eps float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); d > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, d, eps)
	}
}

// RequireNegativeReal fails t unless every value has strictly negative
// real part, the stability condition for analog pole sets.
func RequireNegativeReal(t *testing.T, poles []complex128) {
	t.Helper()
	for i, p := range poles {
		if real(p) >= 0 {
			t.Fatalf("pole %d: real part %v not strictly negative", i, real(p))
		}
	}
}

// ContainsConjugate reports whether roots contains the conjugate of r
// within eps.
func ContainsConjugate(roots []complex128, r complex128, eps float64) bool {
	want := cmplx.Conj(r)
	for _, x := range roots {
		if cmplx.Abs(x-want) <= eps {
			return true
		}
	}
	return false
}
