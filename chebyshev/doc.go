// Package chebyshev derives symmetric lowpass Chebyshev filter prototypes
// from an order N and two ripple factors (e1, e2).
//
// A [Design] session produces two real-coefficient transfer functions:
// F1, the product of the order-N sections F11 (ripple e1) and F12 (ripple
// e2), and F2, a single order-2N section with combined ripple e12 = e1*e2.
// The pole sets used to build them are retained for downstream
// visualization and synthesis stages.
//
// Two mutually exclusive pole-placement modes exist:
//
//   - With DC drop: closed-form sinh/cosh placement on the Chebyshev
//     ellipse. Available for every order, and the forced mode for odd N.
//   - Without DC drop: even orders only. The warped characteristic
//     1 + (e*L_M(w))^2 is expanded into a real polynomial in s and solved
//     numerically; the left-half-plane roots become the pole set and the
//     numerator scalar is chosen for unit DC gain.
//
// # Usage
//
//	d, err := chebyshev.NewDesign(chebyshev.Params{
//		N: 4, E1: 0.5, E2: 0.2, RgDenorm: 50, RLDenorm: 50,
//	})
//	if err != nil {
//		return err
//	}
//	if err := d.Run(); err != nil {
//		return err
//	}
//	// d.F1, d.F2, d.PK11, d.PK12, d.PK2 are now populated.
package chebyshev
