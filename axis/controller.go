package axis

import (
	"math"

	"github.com/katalvlaran/plotkit/graphable"
)

// BoundsSource is the aggregate a Controller can track; it is satisfied
// by collection.Collection. The controller holds no reference to the
// source's members, only the subscription handle.
type BoundsSource interface {
	// Bounds returns the current aggregated data extent.
	Bounds() graphable.Bounds
	// Empty reports whether the source has no members left.
	Empty() bool
	// OnChange registers a change listener.
	OnChange(fn func()) graphable.Subscription
}

// Controller turns aggregated data bounds plus user-pinned limits into
// final Axis values, recomputing only when either input moved.
// It is single-threaded like the rest of the module.
type Controller struct {
	x, y axisState
}

type axisState struct {
	opts           Options
	pinMin, pinMax float64 // NaN = unpinned
	lastMin        float64
	lastMax        float64
	lastForce      bool
	valid          bool
	axis           Axis
}

// NewController returns a Controller with unpinned horizontal X and
// vertical Y axes using the given label format ("" means DefaultLabelFormat).
func NewController(labelFormat string) *Controller {
	c := &Controller{
		x: newAxisState(Options{Horizontal: true, LabelFormat: labelFormat}),
		y: newAxisState(Options{Horizontal: false, LabelFormat: labelFormat}),
	}

	return c
}

func newAxisState(opts Options) axisState {
	return axisState{
		opts:   opts,
		pinMin: math.NaN(),
		pinMax: math.NaN(),
	}
}

// X returns the most recently computed X axis (zero value before the
// first Recalculate).
func (c *Controller) X() Axis { return c.x.axis }

// Y returns the most recently computed Y axis.
func (c *Controller) Y() Axis { return c.y.axis }

// SetXLimits pins the X axis to [min, max], overriding data bounds.
// Pinned axes are computed with ForceBounds semantics.
// Returns ErrNonFiniteBound or ErrInvertedBounds on bad input.
func (c *Controller) SetXLimits(min, max float64) error {
	return c.x.pin(min, max)
}

// SetYLimits pins the Y axis to [min, max]; see SetXLimits.
func (c *Controller) SetYLimits(min, max float64) error {
	return c.y.pin(min, max)
}

// ClearXLimits removes the X pin; bounds follow the data again.
func (c *Controller) ClearXLimits() { c.x.unpin() }

// ClearYLimits removes the Y pin; bounds follow the data again.
func (c *Controller) ClearYLimits() { c.y.unpin() }

// Recalculate feeds fresh aggregated data bounds into both axes and
// reports whether either resulting Axis changed. Identical inputs with
// unchanged pins are a no-op returning false. Complexity: O(TickCount).
func (c *Controller) Recalculate(b graphable.Bounds) bool {
	cx := c.x.update(b.XMin, b.XMax)
	cy := c.y.update(b.YMin, b.YMax)

	return cx || cy
}

// Track recomputes from src now, then follows its change notifications.
// When the source reports empty — its last member was removed — pinned
// limits are reset before recomputing. Cancel the returned subscription
// to stop tracking.
func (c *Controller) Track(src BoundsSource) graphable.Subscription {
	apply := func() {
		if src.Empty() {
			c.ClearXLimits()
			c.ClearYLimits()
		}
		c.Recalculate(src.Bounds())
	}
	apply()

	return src.OnChange(apply)
}

func (s *axisState) pin(min, max float64) error {
	if !finite(min) || !finite(max) {
		return ErrNonFiniteBound
	}
	if min > max {
		return ErrInvertedBounds
	}
	s.pinMin, s.pinMax = min, max

	return nil
}

func (s *axisState) unpin() {
	s.pinMin, s.pinMax = math.NaN(), math.NaN()
}

// update recomputes the axis for the given data bounds, honoring pins,
// and reports whether the axis changed.
func (s *axisState) update(dataMin, dataMax float64) bool {
	min, max, force := dataMin, dataMax, false
	if !math.IsNaN(s.pinMin) {
		min, force = s.pinMin, true
	}
	if !math.IsNaN(s.pinMax) {
		max, force = s.pinMax, true
	}

	if s.valid && sameBound(min, s.lastMin) && sameBound(max, s.lastMax) && force == s.lastForce {
		return false
	}
	s.lastMin, s.lastMax, s.lastForce = min, max, force

	opts := s.opts
	opts.ForceBounds = force
	next := Compute(min, max, opts)
	changed := !s.valid || !next.Equal(s.axis)
	s.axis = next
	s.valid = true

	return changed
}

// sameBound compares bounds treating NaN as equal to NaN, so an unset
// bound does not force endless recomputation.
func sameBound(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}
