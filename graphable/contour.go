package graphable

import (
	"math"

	"github.com/katalvlaran/plotkit/colormap"
)

// Field is a scalar function over the plane.
type Field func(x, y float64) float64

// ContourMask samples a Field on a regular grid and keeps a boolean
// inclusion mask per cell: true where the criteria accepts the sampled
// value. The field itself stays the source of truth for cursor queries;
// the mask only answers region-membership tests.
type ContourMask struct {
	base
	field    Field
	criteria colormap.Filter

	nx, ny     int
	xMin, xMax float64
	yMin, yMax float64
	mask       [][]bool
}

var (
	_ Graphable   = (*ContourMask)(nil)
	_ AutoBounder = (*ContourMask)(nil)
)

// NewContourMask builds a mask over the given axis ranges. The field
// must be non-nil (ErrNilField), the resolution at least 2×2
// (ErrBadResolution) and the ranges finite (ErrNonFiniteBound). A nil
// criteria defaults to v >= 0. The field is sampled once up front.
// Complexity: O(nx·ny) field evaluations.
func NewContourMask(name string, field Field, xMin, xMax, yMin, yMax float64, nx, ny int, criteria colormap.Filter, opts ...Option) (*ContourMask, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if nx < 2 || ny < 2 {
		return nil, ErrBadResolution
	}
	if !finite(xMin) || !finite(xMax) || !finite(yMin) || !finite(yMax) {
		return nil, ErrNonFiniteBound
	}
	if criteria == nil {
		criteria = func(v float64) bool { return v >= 0 }
	}

	c := &ContourMask{
		base:     newBase(name, opts),
		field:    field,
		criteria: criteria,
		nx:       nx, ny: ny,
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
	}
	c.resample()

	return c, nil
}

// Resample re-evaluates the field over the whole grid and notifies.
// Call it after the field's underlying data changes.
func (c *ContourMask) Resample() {
	c.resample()
	c.Emit()
}

func (c *ContourMask) resample() {
	c.mask = make([][]bool, c.nx)
	for i := 0; i < c.nx; i++ {
		c.mask[i] = make([]bool, c.ny)
		for j := 0; j < c.ny; j++ {
			c.mask[i][j] = c.criteria(c.field(c.xAt(i), c.yAt(j)))
		}
	}
}

// Dims returns the sampling resolution.
func (c *ContourMask) Dims() (nx, ny int) { return c.nx, c.ny }

// Bounds returns the declared x/y ranges; a mask never auto-fits.
func (c *ContourMask) Bounds() Bounds {
	return Bounds{XMin: c.xMin, XMax: c.xMax, YMin: c.yMin, YMax: c.yMax}
}

// AutoBounds reports no auto-fit contribution: a mask's extent is a
// declared viewport choice, not data.
func (c *ContourMask) AutoBounds() (Bounds, bool) { return Bounds{}, false }

// MaskAt reports whether the cell nearest to (x, y) satisfied the
// criteria at the last resample. Coordinates are clamped onto the grid.
func (c *ContourMask) MaskAt(x, y float64) bool {
	i := int(math.Round(cellCoord(x, c.xMin, c.xMax, c.nx)))
	j := int(math.Round(cellCoord(y, c.yMin, c.yMax, c.ny)))

	return c.mask[i][j]
}

// ValueAt evaluates the field directly; cursor readouts never go through
// the sampled mask. The axis spans are ignored.
func (c *ContourMask) ValueAt(x, y, _, _ float64) float64 {
	return c.field(x, y)
}

// ValueText reports the formatted cursor readout.
func (c *ContourMask) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	return c.text(c.ValueAt(x, y, domainWidth, rangeHeight), withName)
}

func (c *ContourMask) xAt(i int) float64 {
	return c.xMin + float64(i)*(c.xMax-c.xMin)/float64(c.nx-1)
}

func (c *ContourMask) yAt(j int) float64 {
	return c.yMin + float64(j)*(c.yMax-c.yMin)/float64(c.ny-1)
}
