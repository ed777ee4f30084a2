// Package colormap defines the Map type, its options, and sentinel errors.
package colormap

import (
	"errors"
	"image/color"
	"math"
)

// Sentinel errors for colormap construction.
var (
	// ErrNoColors indicates a list-backed map was requested with zero stops.
	ErrNoColors = errors.New("colormap: need at least one color stop")

	// ErrNilFunc indicates a function-backed map was requested with a nil function.
	ErrNilFunc = errors.New("colormap: lookup function must be non-nil")
)

// Errors reported by the gonum palette adapter (see Ranged).
var (
	// ErrUnderflow indicates a value below the adapter's minimum.
	ErrUnderflow = errors.New("colormap: value below minimum")

	// ErrOverflow indicates a value above the adapter's maximum.
	ErrOverflow = errors.New("colormap: value above maximum")

	// ErrNaN indicates a NaN value passed to the adapter.
	ErrNaN = errors.New("colormap: NaN value")

	// ErrEmptyRange indicates the adapter's minimum equals its maximum.
	ErrEmptyRange = errors.New("colormap: range minimum equals maximum")
)

// Filter decides whether a value participates in color lookup.
// Values rejected by the filter resolve to the map's sentinel color,
// and graph entities use the same predicate to exclude masked samples
// from auto-fit bound scans.
type Filter func(v float64) bool

// FiniteFilter is the default Filter: it accepts every finite value.
func FiniteFilter(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Option configures a Map at construction time.
type Option func(*Map)

// WithStepped disables blending between stops: each stop owns an equal
// slice of [0,1] and is returned verbatim.
func WithStepped() Option {
	return func(m *Map) { m.stepped = true }
}

// WithFilter replaces the default FiniteFilter predicate.
func WithFilter(f Filter) Option {
	return func(m *Map) {
		if f != nil {
			m.filter = f
		}
	}
}

// WithSentinel replaces the default transparent sentinel color returned
// for filtered-out values.
func WithSentinel(c color.Color) Option {
	return func(m *Map) { m.sentinel = c }
}
