package chebyshev

import (
	"math/cmplx"

	"github.com/cwbudde/algo-ladder/poly"
)

// TransferFunction is a pair of real-coefficient polynomials in descending
// powers of s. For a realizable one-port function the denominator degree is
// at least the numerator degree.
type TransferFunction struct {
	Num poly.Poly
	Den poly.Poly
}

// NewTransferFunction assembles a transfer function from a scalar numerator
// and a denominator polynomial.
func NewTransferFunction(num float64, den poly.Poly) TransferFunction {
	return TransferFunction{Num: poly.Poly{num}, Den: den}
}

// Eval evaluates the transfer function at a complex frequency point.
func (tf TransferFunction) Eval(s complex128) complex128 {
	return tf.Num.Eval(s) / tf.Den.Eval(s)
}

// DCGain returns |H(0)|.
func (tf TransferFunction) DCGain() float64 {
	return cmplx.Abs(tf.Eval(0))
}

// Equal reports exact coefficient equality with other.
func (tf TransferFunction) Equal(other TransferFunction) bool {
	if len(tf.Num) != len(other.Num) || len(tf.Den) != len(other.Den) {
		return false
	}
	for i := range tf.Num {
		if tf.Num[i] != other.Num[i] {
			return false
		}
	}
	for i := range tf.Den {
		if tf.Den[i] != other.Den[i] {
			return false
		}
	}
	return true
}

// PolesToPoly expands a pole set into its monic real-coefficient
// polynomial. The pole set must be closed under conjugation (or purely
// real); otherwise poly.ErrComplexCoefficients is returned.
func PolesToPoly(poles []complex128) (poly.Poly, error) {
	return poly.FromRoots(poles).Clean(poly.CleanTol)
}
