// Package axis turns raw data ranges into human-friendly tick scales.
//
// Compute derives an Axis value from a data interval: a "nice" major unit
// (1, 2, 5, 10, 20, ... scaled by the order of magnitude), bounds rounded
// outward onto unit multiples with a 5% margin and a zero bias (the zero
// line is included whenever the data does not cross it), and one label per
// tick. Degenerate inputs (equal or non-finite bounds) resolve to a
// single-tick axis instead of failing; Compute is a total function.
//
// Controller sits between a bounds aggregate and the axes it drives: it
// merges user-pinned limits with incoming data bounds, recomputes only
// when either moved, and resets pinned limits once the tracked source
// becomes empty.
//
// Ticker adapts the same algorithm to gonum's plot.Ticker so plotkit
// scales can drive a gonum.org/v1/plot axis directly.
package axis
