// Package synthesis defines the ladder synthesis strategy contract shared
// by all realization methods and provides the continued-fraction (Cauer)
// implementation.
//
// Every strategy consumes a completed [chebyshev.Design] and returns an
// inductor/capacitor value pair of the same shape. Besides Cauer, the
// historical strategy names (transmission-matrix decomposition,
// Yanagisawa, Mathews-Seifert, Lovering, Mitra, Kuh, state-variable) are
// registered as explicit not-implemented variants so callers can
// enumerate them without receiving placeholder numeric data.
package synthesis

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ladder/cauer"
	"github.com/cwbudde/algo-ladder/chebyshev"
)

// ErrNotImplemented is returned by strategies that name a known synthesis
// method without carrying an implementation.
var ErrNotImplemented = errors.New("synthesis: strategy not implemented")

// Result is the inductor/capacitor value pair every strategy produces,
// denormalized to the design's load resistance (henries and farads).
type Result struct {
	L []float64
	C []float64
}

// Strategy realizes a completed prototype design as an LC ladder.
type Strategy interface {
	Name() string
	Synthesize(d *chebyshev.Design) (Result, error)
}

// Cauer realizes the driving-point impedance implied by F1 through
// continued-fraction expansion. Diag, when non-nil, receives elements
// skipped during partition.
type Cauer struct {
	Diag cauer.DiagFunc
}

// Name returns "cauer".
func (Cauer) Name() string { return "cauer" }

// Synthesize extracts the ladder from F1 and denormalizes it by the load
// resistance.
func (c Cauer) Synthesize(d *chebyshev.Design) (Result, error) {
	ladder, err := cauer.Extract(d.F1.Num, d.F1.Den)
	if err != nil {
		return Result{}, fmt.Errorf("synthesis: cauer: %w", err)
	}
	el := ladder.Partition(c.Diag).Denormalize(d.RLDenorm)
	return Result{L: el.L, C: el.C}, nil
}

// notImplemented is a named strategy without an implementation.
type notImplemented struct {
	name string
}

func (n notImplemented) Name() string { return n.name }

func (n notImplemented) Synthesize(*chebyshev.Design) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s", ErrNotImplemented, n.name)
}

// Strategies returns every registered strategy, the Cauer implementation
// first.
func Strategies() []Strategy {
	return []Strategy{
		Cauer{},
		notImplemented{"transmission-matrix"},
		notImplemented{"yanagisawa"},
		notImplemented{"mathews-seifert"},
		notImplemented{"lovering"},
		notImplemented{"mitra"},
		notImplemented{"kuh"},
		notImplemented{"state-variable"},
	}
}

// ByName looks up a strategy by its name.
func ByName(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
