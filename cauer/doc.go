// Package cauer extracts LC ladder networks from driving-point impedance
// functions by continued-fraction (Cauer-I) expansion.
//
// The expansion runs an explicit state machine over the numerator and
// denominator polynomials. Each shift step removes a series reactance
// k*s from the current function; each plain division step removes a
// constant term. Once the divisor reduces to a single coefficient the
// terminal step drains the remaining numerator. A shape relationship the
// machine cannot handle stops the expansion in the aborted state; the
// values accumulated up to that point are still usable.
//
// Extracted values partition by position parity into series inductors
// (even positions, normalized henries) and shunt capacitors (odd
// positions, normalized farads). Negative values discovered during
// partition are skipped one at a time through a diagnostic callback; a
// single bad coefficient does not discard the rest of the partition.
package cauer
