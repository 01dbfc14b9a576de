package cauer

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-ladder/poly"
)

// Errors returned by the continued-fraction expansion.
var (
	ErrNonRealizable      = errors.New("cauer: expansion produced a negative element")
	ErrNumericInstability = errors.New("cauer: division by zero or vanishing leading coefficient")
)

// State identifies a step of the continued-fraction state machine.
type State int

const (
	// StateInitialShift is the first series extraction from the raw
	// impedance.
	StateInitialShift State = iota

	// StatePlainDivision removes a constant term when numerator and
	// divisor share the same degree.
	StatePlainDivision

	// StateShiftDivision removes a series reactance k*s when the
	// numerator degree exceeds the divisor degree by one.
	StateShiftDivision

	// StateTerminal drains the numerator once the divisor is a single
	// coefficient.
	StateTerminal

	// StateAborted marks a shape relationship the machine cannot reduce.
	StateAborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialShift:
		return "initial-shift"
	case StatePlainDivision:
		return "plain-division"
	case StateShiftDivision:
		return "shift-division"
	case StateTerminal:
		return "terminal"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Ladder is the ordered element-value sequence produced by one expansion.
// Steps records the state trace of the machine; Final is the stop state,
// StateTerminal for a complete expansion or StateAborted for an early
// exit.
type Ladder struct {
	Values []float64
	Steps  []State
	Final  State
}

// DiagFunc receives the position and value of an element skipped during
// partition.
type DiagFunc func(pos int, value float64)

// Elements is a ladder partitioned into series inductors and shunt
// capacitors.
type Elements struct {
	L []float64
	C []float64
}

// Extract expands the impedance num/den into ordered element values.
// Both polynomials are descending-power real coefficient sequences. A
// negative extracted coefficient is ErrNonRealizable; a vanishing leading
// divisor coefficient is ErrNumericInstability. On error the returned
// ladder is empty, never partial.
func Extract(num, den poly.Poly) (Ladder, error) {
	p := num.TrimLeading().Clone()
	q := den.TrimLeading().Clone()
	if p.IsZero() || q.IsZero() {
		return Ladder{}, ErrNumericInstability
	}

	var (
		values []float64
		steps  []State
	)

	stop := func(final State) (Ladder, error) {
		return Ladder{Values: values, Steps: append(steps, final), Final: final}, nil
	}

	for {
		if len(q) == 1 {
			// Exact termination: the previous remainder vanished
			// and there is nothing left to divide.
			if q.IsZero() {
				return stop(StateTerminal)
			}
			values = append(values, p[0]/q[0])
			if len(p) > 1 {
				values = append(values, p[1]/q[0])
			}
			return stop(StateTerminal)
		}

		switch {
		case len(p) == len(q)+1:
			if len(steps) == 0 {
				steps = append(steps, StateInitialShift)
			} else {
				steps = append(steps, StateShiftDivision)
			}
			// Shift step: divide by s*q, so the divisor is q
			// shifted up one power with a zero constant term.
			qs := q.MulS()
			k, err := quotient(p, qs)
			if err != nil {
				return Ladder{}, err
			}
			values = append(values, k)
			p, q = q, poly.Sub(p, poly.Scale(qs, k)).TrimLeading()

		case len(p) == len(q):
			steps = append(steps, StatePlainDivision)
			k, err := quotient(p, q)
			if err != nil {
				return Ladder{}, err
			}
			values = append(values, k)
			p, q = q, poly.Sub(p, poly.Scale(q, k)).TrimLeading()

		default:
			// Degenerate shape: stop and keep what was extracted.
			return stop(StateAborted)
		}
	}
}

// quotient returns the leading-coefficient ratio guarded by the
// realizability and stability checks.
func quotient(p, q poly.Poly) (float64, error) {
	if math.Abs(q.Leading()) <= poly.TrimTol {
		return 0, ErrNumericInstability
	}
	k := p.Leading() / q.Leading()
	if k < 0 {
		return 0, ErrNonRealizable
	}
	return k, nil
}

// Partition splits the value sequence by position parity: even positions
// become series inductors, odd positions shunt capacitors. A negative
// value is reported through diag (if non-nil) and skipped; the rest of
// the partition proceeds.
func (l Ladder) Partition(diag DiagFunc) Elements {
	var e Elements
	for i, v := range l.Values {
		if v < 0 {
			if diag != nil {
				diag(i, v)
			}
			continue
		}
		if i%2 == 0 {
			e.L = append(e.L, v)
		} else {
			e.C = append(e.C, v)
		}
	}
	return e
}

// Denormalize scales normalized element values to a load resistance:
// inductors multiply by rl, capacitors divide by rl.
func (e Elements) Denormalize(rl float64) Elements {
	out := Elements{
		L: make([]float64, len(e.L)),
		C: make([]float64, len(e.C)),
	}
	for i, v := range e.L {
		out.L[i] = v * rl
	}
	for i, v := range e.C {
		out.C[i] = v / rl
	}
	return out
}
