// Command lcdesign designs a symmetric lowpass Chebyshev filter prototype
// and realizes it as a passive LC ladder network.
//
// Usage:
//
//	lcdesign [flags]
//
// Examples:
//
//	lcdesign -n 4 -e1 0.5 -e2 0.2 -rg 50 -rl 50
//	lcdesign -n 4 -e1 1 -e2 1 -rg 50 -rl 50 -no-dc-drop
//	lcdesign -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-ladder/chebyshev"
	"github.com/cwbudde/algo-ladder/synthesis"
)

func main() {
	var (
		order    = flag.Int("n", 3, "filter order (>= 2)")
		e1       = flag.Float64("e1", 0.5, "first ripple factor (> 0)")
		e2       = flag.Float64("e2", 0.2, "second ripple factor (> 0)")
		rg       = flag.Float64("rg", 50, "generator resistance in ohms")
		rl       = flag.Float64("rl", 50, "load resistance in ohms")
		noDrop   = flag.Bool("no-dc-drop", false, "request the DC-drop-free design (even orders only)")
		method   = flag.String("method", "cauer", "synthesis method name")
		listOnly = flag.Bool("list", false, "list synthesis methods and exit")
	)
	flag.Parse()

	if *listOnly {
		listStrategies(os.Stdout)
		return
	}

	d, err := chebyshev.NewDesign(chebyshev.Params{
		N:        *order,
		E1:       *e1,
		E2:       *e2,
		RgDenorm: *rg,
		RLDenorm: *rl,
		NoDCDrop: *noDrop,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "lcdesign:", err)
		os.Exit(1)
	}

	if err := d.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "lcdesign:", err)
		os.Exit(1)
	}

	printDesign(os.Stdout, d)

	strategy, ok := synthesis.ByName(*method)
	if !ok {
		fmt.Fprintf(os.Stderr, "lcdesign: unknown synthesis method %q (try -list)\n", *method)
		os.Exit(1)
	}
	if c, isCauer := strategy.(synthesis.Cauer); isCauer {
		c.Diag = func(pos int, v float64) {
			fmt.Fprintf(os.Stderr, "lcdesign: skipped negative element %g at position %d\n", v, pos)
		}
		strategy = c
	}

	result, err := strategy.Synthesize(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lcdesign:", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s synthesis of F1 (denormalized to RL = %g ohm)\n", strategy.Name(), d.RLDenorm)
	printValues(os.Stdout, "L (H)", result.L)
	printValues(os.Stdout, "C (F)", result.C)
}

func listStrategies(w *os.File) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tSTATUS")
	for _, s := range synthesis.Strategies() {
		status := "not implemented"
		if _, ok := s.(synthesis.Cauer); ok {
			status = "implemented"
		}
		fmt.Fprintf(tw, "%s\t%s\n", s.Name(), status)
	}
	tw.Flush()
}

func printDesign(w *os.File, d *chebyshev.Design) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "order\t%d\n", d.N)
	fmt.Fprintf(tw, "e1, e2\t%g, %g\n", d.E1, d.E2)
	fmt.Fprintf(tw, "Rg/RL\t%g\n", d.Rg)
	tw.Flush()

	printPoles(w, "F11 poles", d.PK11)
	printPoles(w, "F12 poles", d.PK12)
	printPoles(w, "F2 poles", d.PK2)

	fmt.Fprintf(w, "F1 num: %v\n", d.F1.Num)
	fmt.Fprintf(w, "F1 den: %v\n", d.F1.Den)
	fmt.Fprintf(w, "F2 num: %v\n", d.F2.Num)
	fmt.Fprintf(w, "F2 den: %v\n", d.F2.Den)
}

func printPoles(w *os.File, label string, poles []complex128) {
	fmt.Fprintf(w, "%s:\n", label)
	for _, p := range poles {
		fmt.Fprintf(w, "  %+.6f %+.6fj\n", real(p), imag(p))
	}
}

func printValues(w *os.File, label string, values []float64) {
	fmt.Fprintf(w, "%s:", label)
	if len(values) == 0 {
		fmt.Fprint(w, " (none)")
	}
	for _, v := range values {
		fmt.Fprintf(w, " %.9g", v)
	}
	fmt.Fprintln(w)
}
