// Package poly provides real-coefficient polynomial algebra for analog
// filter prototypes.
//
// Polynomials are stored in descending power order: index 0 holds the
// highest-degree coefficient. A polynomial is never empty; the zero
// polynomial is the single-element sequence {0}. All operations preserve
// this convention, so callers can rely on Leading and Degree without
// re-checking slice shapes.
//
// # Usage
//
// Expand a pole set into a denominator and evaluate it on the imaginary
// axis:
//
//	den, err := poly.FromRoots(poles).Clean(poly.CleanTol)
//	if err != nil {
//		// residual imaginary parts: pole set was not conjugate-closed
//	}
//	h := den.Eval(complex(0, w))
//
// Products use direct convolution for the small degrees typical of filter
// prototypes and switch to an FFT product above [FFTThreshold] coefficients.
package poly
