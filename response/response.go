// Package response computes frequency-response data arrays for a
// visualization layer: magnitude, power, and group delay of an analog
// transfer function evaluated along a frequency grid.
//
// The package only produces data; plotting is a consumer concern. All
// functions evaluate H(jw) by Horner's method on the raw coefficient
// arrays, split into real and imaginary parts, and combine them with
// SIMD-accelerated vector kernels.
package response

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-ladder/chebyshev"
)

const ln10 = 2.302585092994046

// evalParts evaluates H(jw) over the grid into separate real and
// imaginary part slices.
func evalParts(tf chebyshev.TransferFunction, w []float64) (re, im []float64) {
	re = make([]float64, len(w))
	im = make([]float64, len(w))
	for i, f := range w {
		h := tf.Eval(complex(0, f))
		re[i] = real(h)
		im[i] = imag(h)
	}
	return re, im
}

// Magnitude returns |H(jw)| for each grid point.
func Magnitude(tf chebyshev.TransferFunction, w []float64) []float64 {
	if len(w) == 0 {
		return nil
	}
	re, im := evalParts(tf, w)
	out := make([]float64, len(w))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |H(jw)|^2 for each grid point.
func Power(tf chebyshev.TransferFunction, w []float64) []float64 {
	if len(w) == 0 {
		return nil
	}
	re, im := evalParts(tf, w)
	out := make([]float64, len(w))
	vecmath.Power(out, re, im)
	return out
}

// MagnitudeDB returns 20*log10|H(jw)| for each grid point. The
// conversion uses a fast logarithm approximation; the result is
// plot-grade, not reference-grade. Zero magnitude maps to -Inf.
func MagnitudeDB(tf chebyshev.TransferFunction, w []float64) []float64 {
	mag := Magnitude(tf, w)
	for i, m := range mag {
		switch {
		case m > 0:
			mag[i] = 20 * approx.FastLog(m) / ln10
		default:
			mag[i] = math.Inf(-1)
		}
	}
	return mag
}

// GroupDelay returns -d(phase)/dw as a finite difference over the grid.
// The phase is unwrapped before differencing; the result has length
// len(w)-1, each entry belonging to the midpoint of its grid interval.
func GroupDelay(tf chebyshev.TransferFunction, w []float64) []float64 {
	if len(w) < 2 {
		return nil
	}
	re, im := evalParts(tf, w)

	phase := make([]float64, len(w))
	offset := 0.0
	prev := math.Atan2(im[0], re[0])
	phase[0] = prev
	for i := 1; i < len(w); i++ {
		ph := math.Atan2(im[i], re[i])
		d := ph - prev
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}
		prev = ph
		phase[i] = ph + offset
	}

	out := make([]float64, len(w)-1)
	for i := range out {
		out[i] = -(phase[i+1] - phase[i]) / (w[i+1] - w[i])
	}
	return out
}

// LogSpace returns n frequencies spaced logarithmically between
// 10^startExp and 10^stopExp, endpoints included.
func LogSpace(startExp, stopExp float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, startExp)
		return out
	}
	step := (stopExp - startExp) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, startExp+float64(i)*step)
	}
	return out
}
