// Package graphable defines entity interfaces, options, and sentinel errors.
package graphable

import (
	"errors"

	"github.com/katalvlaran/plotkit/colormap"
)

// Sentinel errors for entity construction and mutation.
var (
	// ErrLengthMismatch indicates coordinate buffers of differing lengths.
	ErrLengthMismatch = errors.New("graphable: coordinate buffers must have equal length")

	// ErrChannelLength indicates a metadata channel whose length differs
	// from the series it annotates.
	ErrChannelLength = errors.New("graphable: channel length must match series length")

	// ErrIndexOutOfRange indicates a point or channel index outside the buffer.
	ErrIndexOutOfRange = errors.New("graphable: index out of range")

	// ErrEmptyGrid indicates a surface grid with no rows or no columns.
	ErrEmptyGrid = errors.New("graphable: grid must have at least one row and one column")

	// ErrRaggedGrid indicates surface grid rows of differing lengths.
	ErrRaggedGrid = errors.New("graphable: all grid rows must have the same length")

	// ErrNonFiniteBound indicates an explicit bound that was NaN or infinite.
	ErrNonFiniteBound = errors.New("graphable: explicit bound must be finite")

	// ErrInvertedBounds indicates an explicit min greater than max.
	ErrInvertedBounds = errors.New("graphable: explicit min must not exceed max")

	// ErrNilField indicates a contour mask built without a source field.
	ErrNilField = errors.New("graphable: contour field must be non-nil")

	// ErrBadResolution indicates a contour sampling grid below 2×2.
	ErrBadResolution = errors.New("graphable: contour resolution must be at least 2x2")
)

// Graphable is the queryable entity contract shared by all kinds and by
// collections, allowing collections to nest.
//
// ValueAt and ValueText receive the visible axis spans (domainWidth,
// rangeHeight) so scattered lookups can normalize both axes to equal
// visual weight; entity kinds with sorted lookups ignore them.
type Graphable interface {
	// Name identifies the entity inside a collection.
	Name() string

	// Visible reports whether the entity takes part in aggregation.
	Visible() bool

	// Bounds returns the entity's x/y data extent.
	Bounds() Bounds

	// ValueAt reports the interpolated value under the cursor.
	// It is a total function: anomalies resolve to defined sentinels.
	ValueAt(x, y, domainWidth, rangeHeight float64) float64

	// ValueText reports the formatted cursor readout, optionally
	// prefixed with the entity's name.
	ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string

	// OnChange registers a listener invoked after each mutation.
	OnChange(fn func()) Subscription
}

// ZBounder is implemented by entities exposing a third, color-mapped
// axis (surfaces, 3-D lines, 3-D collections).
type ZBounder interface {
	// ZBounds returns the derived z extent.
	ZBounds() (min, max float64)

	// ColorMap returns the entity's own map, or nil when the entity is
	// colored by its collection's dominant map.
	ColorMap() *colormap.Map
}

// AutoBounder is the capability interface behind per-kind auto-fit bound
// rules. ok=false means the entity contributes nothing to auto-fit
// aggregation (contour masks); an unset Bounds with ok=true means every
// sample was filtered out.
type AutoBounder interface {
	AutoBounds() (b Bounds, ok bool)
}

// Scaler exposes per-axis display scale factors applied by collections
// when aggregating verbatim bounds.
type Scaler interface {
	XScale() float64
	YScale() float64
}

// Option configures the shared entity state at construction time.
type Option func(*base)

// WithUnit sets the unit suffix appended to cursor readouts.
func WithUnit(unit string) Option {
	return func(b *base) { b.unit = unit }
}

// WithFormat sets the fmt verb for cursor readouts (default "%g").
func WithFormat(format string) Option {
	return func(b *base) {
		if format != "" {
			b.format = format
		}
	}
}

// WithColorMap assigns the entity's own color map; entities without one
// fall back to their collection's dominant map.
func WithColorMap(m *colormap.Map) Option {
	return func(b *base) { b.cmap = m }
}

// WithScale sets the display scale factors reported through Scaler.
func WithScale(x, y float64) Option {
	return func(b *base) { b.xscale, b.yscale = x, y }
}

// WithHidden constructs the entity invisible to aggregation.
func WithHidden() Option {
	return func(b *base) { b.visible = false }
}
