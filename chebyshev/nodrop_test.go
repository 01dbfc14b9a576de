package chebyshev

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-ladder/internal/testutil"
)

func TestChebyshevEvenPart(t *testing.T) {
	tests := []struct {
		m    int
		want []float64
	}{
		{2, []float64{-1, 2}},           // T_2 = 2w^2 - 1
		{4, []float64{1, -8, 8}},        // T_4 = 8w^4 - 8w^2 + 1
		{6, []float64{-1, 18, -48, 32}}, // T_6 = 32w^6 - 48w^4 + 18w^2 - 1
	}
	for _, tt := range tests {
		got := chebyshevEvenPart(tt.m)
		testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
	}
}

func TestComposeLinear(t *testing.T) {
	// U(y) = 2y - 1 composed with 0.5y + 0.5 collapses to y.
	got := composeLinear([]float64{-1, 2}, 0.5, 0.5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1}, 1e-12)

	// U(y) = y^2 at (2y + 1): 4y^2 + 4y + 1.
	got = composeLinear([]float64{0, 0, 1}, 2, 1)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 4, 4}, 1e-12)
}

func TestCharacteristicS_Order2(t *testing.T) {
	// At M=2 the warp collapses L_2(w) to w^2, so the characteristic is
	// 1 + e^2*s^4 under w = s/i.
	coeff := characteristicS(2, 1)
	want := []complex128{1, 0, 0, 0, 1}
	if len(coeff) != len(want) {
		t.Fatalf("expected %d coefficients, got %d", len(want), len(coeff))
	}
	for i := range want {
		testutil.RequireComplexNearlyEqual(t, coeff[i], want[i], 1e-12)
	}
}

func TestWarpedPoles_Order2(t *testing.T) {
	poles, err := warpedPoles(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(poles) != 2 {
		t.Fatalf("expected 2 poles, got %d", len(poles))
	}
	testutil.RequireNegativeReal(t, poles)

	// Roots of 1 + s^4 in the left half-plane: -sqrt(2)/2 +- j*sqrt(2)/2.
	want := math.Sqrt2 / 2
	for i, p := range poles {
		if math.Abs(real(p)+want) > 1e-9 || math.Abs(math.Abs(imag(p))-want) > 1e-9 {
			t.Errorf("pole %d: got %v, want -%.6f +- j%.6f", i, p, want, want)
		}
	}
}

func TestWarpedPoles_SatisfyCharacteristic(t *testing.T) {
	for _, tc := range []struct {
		m int
		e float64
	}{
		{2, 1}, {4, 0.5}, {4, 0.1}, {8, 0.25},
	} {
		coeff := characteristicS(tc.m, tc.e)
		poles, err := warpedPoles(tc.m, tc.e)
		if err != nil {
			t.Fatalf("m=%d e=%g: %v", tc.m, tc.e, err)
		}
		if len(poles) != tc.m {
			t.Fatalf("m=%d e=%g: got %d poles", tc.m, tc.e, len(poles))
		}
		for i, p := range poles {
			// Residual scaled by the leading coefficient magnitude.
			res := cmplx.Abs(poleResidual(coeff, p))
			if res > 1e-6 {
				t.Errorf("m=%d e=%g pole %d: residual %v", tc.m, tc.e, i, res)
			}
		}
	}
}

func poleResidual(coeff []complex128, p complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*p + coeff[i]
	}
	scale := cmplx.Abs(coeff[0]) * math.Pow(cmplx.Abs(p), float64(len(coeff)-1))
	if scale < 1 {
		scale = 1
	}
	return v / complex(scale, 0)
}

func TestDesignWithoutDCDrop_UnitDCGain(t *testing.T) {
	// Choosing the numerator as the product of negated poles pins
	// |H(0)| to exactly 1: no DC drop.
	for _, n := range []int{2, 4} {
		d := mustDesign(t, Params{N: n, E1: 0.7, E2: 0.3, RgDenorm: 50, RLDenorm: 50, NoDCDrop: true})
		if err := d.DesignWithoutDCDrop(); err != nil {
			t.Fatalf("N=%d: %v", n, err)
		}

		testutil.RequireNearlyEqual(t, d.F1.DCGain(), 1, 1e-9)
		testutil.RequireNearlyEqual(t, d.F2.DCGain(), 1, 1e-9)

		if got, want := d.F1.Den.Degree(), 2*n; got != want {
			t.Fatalf("N=%d: F1 denominator degree %d, want %d", n, got, want)
		}
		testutil.RequireNegativeReal(t, d.PK11)
		testutil.RequireNegativeReal(t, d.PK12)
		testutil.RequireNegativeReal(t, d.PK2)
	}
}
