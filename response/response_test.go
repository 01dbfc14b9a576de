package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ladder/chebyshev"
	"github.com/cwbudde/algo-ladder/internal/testutil"
	"github.com/cwbudde/algo-ladder/poly"
)

// firstOrder is H(s) = 1/(s+1): |H(jw)| = 1/sqrt(1+w^2), group delay
// 1/(1+w^2).
var firstOrder = chebyshev.TransferFunction{
	Num: poly.Poly{1},
	Den: poly.Poly{1, 1},
}

func TestMagnitude_FirstOrder(t *testing.T) {
	w := []float64{0, 1, 2, 10}
	got := Magnitude(firstOrder, w)

	want := make([]float64, len(w))
	for i, f := range w {
		want[i] = 1 / math.Sqrt(1+f*f)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestPower_IsMagnitudeSquared(t *testing.T) {
	w := LogSpace(-2, 2, 50)
	mag := Magnitude(firstOrder, w)
	pow := Power(firstOrder, w)

	for i := range w {
		testutil.RequireNearlyEqual(t, pow[i], mag[i]*mag[i], 1e-12)
	}
}

func TestMagnitudeDB_PlotGrade(t *testing.T) {
	w := []float64{0, 1, 3}
	got := MagnitudeDB(firstOrder, w)

	for i, f := range w {
		want := 20 * math.Log10(1/math.Sqrt(1+f*f))
		// The fast logarithm trades accuracy for speed; 0.01 dB is
		// far below plot resolution.
		testutil.RequireNearlyEqual(t, got[i], want, 1e-2)
	}
}

func TestMagnitudeDB_ZeroMagnitude(t *testing.T) {
	// H(s) = s/(s+1) vanishes at DC.
	tf := chebyshev.TransferFunction{Num: poly.Poly{1, 0}, Den: poly.Poly{1, 1}}
	got := MagnitudeDB(tf, []float64{0})
	if !math.IsInf(got[0], -1) {
		t.Fatalf("expected -Inf at DC, got %v", got[0])
	}
}

func TestGroupDelay_FirstOrder(t *testing.T) {
	n := 2001
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i) * 0.001
	}

	got := GroupDelay(firstOrder, w)
	if len(got) != n-1 {
		t.Fatalf("expected %d samples, got %d", n-1, len(got))
	}

	for i := range got {
		mid := (w[i] + w[i+1]) / 2
		want := 1 / (1 + mid*mid)
		testutil.RequireNearlyEqual(t, got[i], want, 1e-3)
	}
}

func TestGroupDelay_DegenerateGrid(t *testing.T) {
	if got := GroupDelay(firstOrder, []float64{1}); got != nil {
		t.Fatalf("expected nil for single-point grid, got %v", got)
	}
}

func TestLogSpace(t *testing.T) {
	got := LogSpace(-2, 2, 5)
	want := []float64{0.01, 0.1, 1, 10, 100}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if got := LogSpace(0, 1, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
	single := LogSpace(2, 5, 1)
	testutil.RequireSliceNearlyEqual(t, single, []float64{100}, 1e-12)
}

func TestMagnitude_EmptyGrid(t *testing.T) {
	if got := Magnitude(firstOrder, nil); got != nil {
		t.Fatalf("expected nil for empty grid, got %v", got)
	}
}
