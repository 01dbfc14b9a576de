package poly

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTThreshold is the coefficient count above which Mul switches from
// direct convolution to an FFT product.
const FFTThreshold = 64

// Mul returns the product a * b. Coefficient sequences multiply by linear
// convolution; the result is trimmed. For operands below [FFTThreshold]
// coefficients the O(N*M) direct path is used, otherwise both operands are
// zero-padded to a power-of-two length and multiplied in the frequency
// domain.
func Mul(a, b Poly) (Poly, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyPolynomial
	}
	if a.IsZero() || b.IsZero() {
		return Zero(), nil
	}
	if len(a) < FFTThreshold && len(b) < FFTThreshold {
		return mulDirect(a, b), nil
	}
	return mulFFT(a, b)
}

// mulDirect performs direct convolution of the coefficient sequences.
func mulDirect(a, b Poly) Poly {
	out := make(Poly, len(a)+len(b)-1)
	for i, ca := range a {
		for j, cb := range b {
			out[i+j] += ca * cb
		}
	}
	return out
}

// mulFFT multiplies via pointwise products in the frequency domain.
func mulFFT(a, b Poly) (Poly, error) {
	resultLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(resultLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("poly: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, fftSize)
	fb := make([]complex128, fftSize)
	for i, c := range a {
		fa[i] = complex(c, 0)
	}
	for i, c := range b {
		fb[i] = complex(c, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("poly: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("poly: inverse FFT failed: %w", err)
	}

	out := make(Poly, resultLen)
	for i := range out {
		out[i] = real(fa[i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
