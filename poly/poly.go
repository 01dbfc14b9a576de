package poly

import (
	"errors"
	"math"
	"math/cmplx"
)

// Errors returned by polynomial operations.
var (
	ErrComplexCoefficients = errors.New("poly: residual complex coefficients")
	ErrEmptyPolynomial     = errors.New("poly: empty coefficient sequence")
)

const (
	// TrimTol is the magnitude below which a leading coefficient is
	// considered numerical noise and dropped.
	TrimTol = 1e-10

	// CleanTol is the default imaginary-part tolerance for snapping
	// near-real complex coefficients to their real part.
	CleanTol = 1e-10
)

// Poly is a real-coefficient polynomial in descending power order.
// The zero polynomial is Poly{0}, never an empty slice.
type Poly []float64

// Zero returns the zero polynomial sentinel.
func Zero() Poly { return Poly{0} }

// Degree returns the polynomial degree. The zero polynomial has degree 0.
func (p Poly) Degree() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Leading returns the highest-degree coefficient.
func (p Poly) Leading() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

// TrimLeading drops leading coefficients with magnitude <= TrimTol.
// If every coefficient vanishes the zero polynomial {0} is returned,
// never an empty sequence.
func (p Poly) TrimLeading() Poly {
	for i, c := range p {
		if math.Abs(c) > TrimTol {
			return p[i:]
		}
	}
	return Zero()
}

// MulS multiplies p by s, appending a zero constant term. The zero
// polynomial is unchanged.
func (p Poly) MulS() Poly {
	if p.IsZero() {
		return Zero()
	}
	out := make(Poly, len(p)+1)
	copy(out, p)
	return out
}

// Add returns a + b with tail (constant-term) alignment.
func Add(a, b Poly) Poly {
	return combine(a, b, 1)
}

// Sub returns a - b with tail (constant-term) alignment.
func Sub(a, b Poly) Poly {
	return combine(a, b, -1)
}

func combine(a, b Poly, sign float64) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return Zero()
	}
	out := make(Poly, n)
	for i, c := range a {
		out[i+n-len(a)] += c
	}
	for i, c := range b {
		out[i+n-len(b)] += sign * c
	}
	return out
}

// Scale returns k * p.
func Scale(p Poly, k float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = k * c
	}
	return out
}

// Eval evaluates p at x using Horner's method.
func (p Poly) Eval(x complex128) complex128 {
	if len(p) == 0 {
		return 0
	}
	v := complex(p[0], 0)
	for i := 1; i < len(p); i++ {
		v = v*x + complex(p[i], 0)
	}
	return v
}

// Complex returns the coefficients widened to complex128, descending order.
func (p Poly) Complex() []complex128 {
	out := make([]complex128, len(p))
	for i, c := range p {
		out[i] = complex(c, 0)
	}
	return out
}

// CPoly is a complex-coefficient working polynomial, descending power
// order. It is the intermediate form for pole products before cleaning.
type CPoly []complex128

// FromRoots builds the monic polynomial with the given roots by iterative
// synthetic multiplication with (s - root). An empty root set yields the
// constant polynomial {1}.
func FromRoots(roots []complex128) CPoly {
	coeffs := CPoly{1}
	for _, r := range roots {
		next := make(CPoly, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}
	return coeffs
}

// Clean snaps coefficients with |imag| < tol to their real part and
// returns the real polynomial. A coefficient whose imaginary part exceeds
// tol means the root set was not closed under conjugation; that is
// reported as ErrComplexCoefficients. tol <= 0 selects CleanTol.
func (p CPoly) Clean(tol float64) (Poly, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPolynomial
	}
	if tol <= 0 {
		tol = CleanTol
	}
	out := make(Poly, len(p))
	for i, c := range p {
		if math.Abs(imag(c)) >= tol {
			return nil, ErrComplexCoefficients
		}
		out[i] = real(c)
	}
	return out, nil
}

// Eval evaluates p at x using Horner's method.
func (p CPoly) Eval(x complex128) complex128 {
	if len(p) == 0 {
		return 0
	}
	v := p[0]
	for i := 1; i < len(p); i++ {
		v = v*x + p[i]
	}
	return v
}

// ProdNegated returns the product of the negated values, with imaginary
// noise below tol snapped away. It is the numerator scalar of an all-pole
// lowpass built from its pole set. tol <= 0 selects CleanTol.
func ProdNegated(values []complex128, tol float64) (float64, error) {
	if tol <= 0 {
		tol = CleanTol
	}
	prod := complex(1, 0)
	for _, v := range values {
		prod *= -v
	}
	if math.Abs(imag(prod)) >= tol*math.Max(1, cmplx.Abs(prod)) {
		return 0, ErrComplexCoefficients
	}
	return real(prod), nil
}
