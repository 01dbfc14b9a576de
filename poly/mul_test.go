package poly

import (
	"math"
	"testing"
)

func TestMul_Direct(t *testing.T) {
	// (s + 1)(s^2 + 2s + 1) = s^3 + 3s^2 + 3s + 1
	got, err := Mul(Poly{1, 1}, Poly{1, 2, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := Poly{1, 3, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMul_ZeroOperand(t *testing.T) {
	got, err := Mul(Zero(), Poly{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() || len(got) != 1 {
		t.Errorf("expected zero sentinel, got %v", got)
	}
}

func TestMul_FFTMatchesDirect(t *testing.T) {
	// Operands above FFTThreshold take the frequency-domain path; the
	// direct path is the reference.
	a := make(Poly, FFTThreshold+9)
	b := make(Poly, FFTThreshold+3)
	for i := range a {
		a[i] = math.Sin(float64(i)*0.7) + 0.1
	}
	for i := range b {
		b[i] = math.Cos(float64(i)*1.3) - 0.2
	}

	got, err := Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := mulDirect(a, b)

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("coefficient %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMul_EmptyOperand(t *testing.T) {
	if _, err := Mul(Poly{}, Poly{1}); err == nil {
		t.Error("expected error for empty operand")
	}
}
