package chebyshev

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ladder/poly"
)

// Errors returned by prototype design.
var (
	ErrOrderTooLow           = errors.New("chebyshev: order must be >= 2")
	ErrNonPositiveRipple     = errors.New("chebyshev: ripple factors must be > 0")
	ErrNonPositiveResistance = errors.New("chebyshev: port resistances must be > 0")
	ErrOddOrderNoDrop        = errors.New("chebyshev: DC-drop-free design requires even order")
	ErrInsufficientRoots     = errors.New("chebyshev: fewer left-half-plane roots than required")
)

// Params holds the prototype construction parameters. RgDenorm and
// RLDenorm are the generator and load resistances in ohms; NoDCDrop
// requests the DC-drop-free design, which is honored only for even N.
type Params struct {
	N        int
	E1       float64
	E2       float64
	RgDenorm float64
	RLDenorm float64
	NoDCDrop bool
}

// Validate checks the parameter ranges before any pole computation.
func (p Params) Validate() error {
	if p.N < 2 {
		return ErrOrderTooLow
	}
	if p.E1 <= 0 || p.E2 <= 0 {
		return ErrNonPositiveRipple
	}
	if p.RgDenorm <= 0 || p.RLDenorm <= 0 {
		return ErrNonPositiveResistance
	}
	return nil
}

// Design is a prototype design session. A session owns the pole sets and
// transfer functions derived from its parameters; whichever design mode
// runs populates them, and re-invocation overwrites deterministically.
type Design struct {
	Params

	// Rg is the generator resistance normalized to the load; RL is the
	// normalized load, always 1.
	Rg float64
	RL float64

	// PK11 and PK12 hold the order-N pole sets of F11 and F12; PK2 holds
	// the order-2N pole set of F2.
	PK11 []complex128
	PK12 []complex128
	PK2  []complex128

	F1 TransferFunction
	F2 TransferFunction
}

// NewDesign validates the parameters and creates a session.
func NewDesign(p Params) (*Design, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Design{
		Params: p,
		Rg:     p.RgDenorm / p.RLDenorm,
		RL:     1,
	}, nil
}

// Run dispatches to the requested design mode. A DC-drop-free request for
// an odd order falls back to the closed-form design with DC drop rather
// than failing; use DesignWithoutDCDrop directly to make that an error.
func (d *Design) Run() error {
	if d.NoDCDrop && d.N%2 == 0 {
		return d.DesignWithoutDCDrop()
	}
	return d.DesignWithDCDrop()
}

// DesignWithDCDrop computes the prototype with closed-form pole placement.
// For ripple factor e and pole count M the poles lie on the ellipse with
// axes sinh(asinh(1/e)/M) and cosh(asinh(1/e)/M); the numerator scalar
// 1/(e*2^(M-1)) makes each section an all-pole Chebyshev lowpass.
func (d *Design) DesignWithDCDrop() error {
	d.PK11 = ellipsePoles(d.N, d.E1)
	d.PK12 = ellipsePoles(d.N, d.E2)
	d.PK2 = ellipsePoles(2*d.N, d.E1*d.E2)

	num11 := allPoleScalar(d.N, d.E1)
	num12 := allPoleScalar(d.N, d.E2)
	num2 := allPoleScalar(2*d.N, d.E1*d.E2)

	if err := d.assemble(num11, num12, num2); err != nil {
		return fmt.Errorf("chebyshev: with-DC-drop design: %w", err)
	}
	return nil
}

// DesignWithoutDCDrop computes the prototype by solving the warped
// characteristic polynomial for its left-half-plane roots. Only even
// orders admit this mode.
func (d *Design) DesignWithoutDCDrop() error {
	if d.N%2 != 0 {
		return ErrOddOrderNoDrop
	}

	var err error
	if d.PK11, err = warpedPoles(d.N, d.E1); err != nil {
		return err
	}
	if d.PK12, err = warpedPoles(d.N, d.E2); err != nil {
		return err
	}
	if d.PK2, err = warpedPoles(2*d.N, d.E1*d.E2); err != nil {
		return err
	}

	num11, err := poly.ProdNegated(d.PK11, poly.CleanTol)
	if err != nil {
		return fmt.Errorf("chebyshev: F11 numerator: %w", err)
	}
	num12, err := poly.ProdNegated(d.PK12, poly.CleanTol)
	if err != nil {
		return fmt.Errorf("chebyshev: F12 numerator: %w", err)
	}
	num2, err := poly.ProdNegated(d.PK2, poly.CleanTol)
	if err != nil {
		return fmt.Errorf("chebyshev: F2 numerator: %w", err)
	}

	if err := d.assemble(num11, num12, num2); err != nil {
		return fmt.Errorf("chebyshev: DC-drop-free design: %w", err)
	}
	return nil
}

// assemble expands the pole sets, forms F1 as the product of the F11 and
// F12 sections, and cleans every coefficient sequence to real form.
func (d *Design) assemble(num11, num12, num2 float64) error {
	den11, err := PolesToPoly(d.PK11)
	if err != nil {
		return fmt.Errorf("F11 denominator: %w", err)
	}
	den12, err := PolesToPoly(d.PK12)
	if err != nil {
		return fmt.Errorf("F12 denominator: %w", err)
	}
	den2, err := PolesToPoly(d.PK2)
	if err != nil {
		return fmt.Errorf("F2 denominator: %w", err)
	}

	den1, err := poly.Mul(den11, den12)
	if err != nil {
		return fmt.Errorf("F1 denominator: %w", err)
	}

	d.F1 = NewTransferFunction(num11*num12, den1)
	d.F2 = NewTransferFunction(num2, den2)
	return nil
}

// ellipsePoles places M poles at -a*sin(theta_k) + j*b*cos(theta_k) with
// theta_k = (2k+1)*pi/(2M). All real parts are strictly negative for a > 0.
func ellipsePoles(m int, e float64) []complex128 {
	ash := math.Asinh(1/e) / float64(m)
	a := math.Sinh(ash)
	b := math.Cosh(ash)

	poles := make([]complex128, m)
	for k := range m {
		angle := float64(2*k+1) * math.Pi / (2 * float64(m))
		poles[k] = complex(-a*math.Sin(angle), b*math.Cos(angle))
	}
	return poles
}

// allPoleScalar is the numerator of an order-M all-pole Chebyshev lowpass.
func allPoleScalar(m int, e float64) float64 {
	return 1 / (e * math.Pow(2, float64(m-1)))
}
