package chebyshev

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ladder/internal/polyroot"
	"github.com/cwbudde/algo-ladder/poly"
)

// warpedPoles solves the DC-drop-free characteristic 1 + (e*L_M(w))^2 for
// its poles in s, where L_M is the Chebyshev polynomial T_M composed with
// the frequency warp w -> sqrt((cos(pi/2M)*w)^2 + sin(pi/2M)^2).
//
// For even M, T_M contains only even powers, so the warp's radical cancels
// and the characteristic expands to a real polynomial in s^2 of degree 2M
// in s. Its 2M roots split symmetrically about the imaginary axis; the M
// strictly left-half-plane roots form the pole set. Fewer than M qualifying
// roots (a root numerically on the axis) is ErrInsufficientRoots rather
// than a silent truncation.
func warpedPoles(m int, e float64) ([]complex128, error) {
	coeff := characteristicS(m, e)

	roots, err := polyroot.DurandKerner(coeff)
	if err != nil {
		return nil, fmt.Errorf("chebyshev: order-%d characteristic: %w", m, err)
	}

	lhp := polyroot.LeftHalfPlane(roots, polyroot.LHPTol)
	if len(lhp) < m {
		return nil, fmt.Errorf("%w: got %d of %d at order %d",
			ErrInsufficientRoots, len(lhp), m, m)
	}
	return lhp[:m], nil
}

// characteristicS expands 1 + (e*L_M(w))^2 under w = s/i into descending
// complex coefficients of a degree-2M polynomial in s. m must be even.
func characteristicS(m int, e float64) []complex128 {
	// T_M in y = w^2: even orders have only even powers of w.
	u := chebyshevEvenPart(m)

	// Compose with the warp: w^2 -> cos^2(a)*w^2 + sin^2(a), a = pi/2M.
	sin, cos := math.Sincos(math.Pi / (2 * float64(m)))
	v := composeLinear(u, cos*cos, sin*sin)

	// 1 + e^2 * V(y)^2, still ascending in y = w^2. Coefficient
	// convolution is order-agnostic, so poly.Mul squares the ascending
	// sequence unchanged.
	v2, err := poly.Mul(poly.Poly(v), poly.Poly(v))
	if err != nil {
		// Mul only fails on empty operands; v is never empty.
		panic(err)
	}
	asc := make([]float64, len(v2))
	for i, c := range v2 {
		asc[i] = e * e * c
	}
	asc[0] += 1

	// Substitute w = s/i, i.e. y = w^2 = -s^2: the y^k coefficient lands
	// on s^(2k) with sign (-1)^k, descending output order.
	degY := len(asc) - 1
	coeff := make([]complex128, 2*degY+1)
	for k, c := range asc {
		sign := 1.0
		if k%2 == 1 {
			sign = -1
		}
		coeff[2*(degY-k)] = complex(sign*c, 0)
	}
	return coeff
}

// chebyshevEvenPart returns the coefficients of T_m as a polynomial in
// y = w^2, ascending order. m must be even; T_m is built by the three-term
// recurrence T_n = 2w*T_{n-1} - T_{n-2}.
func chebyshevEvenPart(m int) []float64 {
	// Full recurrence in w, ascending coefficients.
	prev := []float64{1}   // T_0
	cur := []float64{0, 1} // T_1
	for n := 2; n <= m; n++ {
		next := make([]float64, n+1)
		for i, c := range cur {
			next[i+1] += 2 * c
		}
		for i, c := range prev {
			next[i] -= c
		}
		prev, cur = cur, next
	}

	u := make([]float64, m/2+1)
	for k := range u {
		u[k] = cur[2*k]
	}
	return u
}

// composeLinear evaluates the ascending polynomial u at (c*y + d) by
// Horner expansion, returning ascending coefficients in y.
func composeLinear(u []float64, c, d float64) []float64 {
	out := []float64{0}
	for k := len(u) - 1; k >= 0; k-- {
		// out = out*(c*y + d) + u[k]
		next := make([]float64, len(out)+1)
		for i, a := range out {
			next[i+1] += c * a
			next[i] += d * a
		}
		next[0] += u[k]
		out = next
	}
	// Degree never exceeds len(u)-1; drop the spare top coefficients
	// introduced by the expansion.
	for len(out) > 1 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}
