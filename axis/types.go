// Package axis defines the Axis value type, options, and sentinel errors.
package axis

import "errors"

// Sentinel errors for axis operations.
var (
	// ErrNonFiniteBound indicates an explicit bound was NaN or infinite.
	ErrNonFiniteBound = errors.New("axis: explicit bound must be finite")

	// ErrInvertedBounds indicates an explicit min greater than max.
	ErrInvertedBounds = errors.New("axis: explicit min must not exceed max")
)

// DefaultLabelFormat is the fmt verb used for tick labels when Options
// leaves LabelFormat empty.
const DefaultLabelFormat = "%g"

// Options configures Compute.
//
// Fields:
//   - Horizontal   — orientation of the axis. Horizontal axes tolerate
//     fewer ticks per span than vertical ones (labels are wider than they
//     are tall), which shifts the nice-unit thresholds.
//   - ForceBounds  — keep the caller's bounds exactly. When they do not
//     land on major-unit multiples the unit becomes a flat tenth of the
//     span instead of a nice number. Used for user-pinned custom bounds.
//   - LabelFormat  — fmt verb for tick labels; empty means DefaultLabelFormat.
type Options struct {
	Horizontal  bool
	ForceBounds bool
	LabelFormat string
}

// DefaultOptions returns Options for a horizontal, auto-rounded axis.
func DefaultOptions() Options {
	return Options{Horizontal: true}
}

// Axis is a derived tick scale over [Min, Max].
//
// Invariant: TickCount = round((Max-Min)/MajorUnit) and
// len(Labels) = TickCount+1, except the degenerate single-tick case
// (equal or non-finite input bounds) where MajorUnit is 0, TickCount is 1
// and the two labels are the literal input bounds.
type Axis struct {
	Min, Max  float64
	MajorUnit float64
	TickCount int
	Labels    []string
}
