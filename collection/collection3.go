package collection

import (
	"math"

	"github.com/katalvlaran/plotkit/colormap"
	"github.com/katalvlaran/plotkit/graphable"
)

// Collection3 is a Collection that additionally aggregates the third,
// color-mapped axis: a z extent over visible ZBounder members and a
// dominant color map — the first visible member carrying its own map —
// used to color members that have none. It implements ZBounder itself,
// so 3-D collections nest inside each other.
type Collection3 struct {
	Collection
	zMin, zMax float64
	dominant   *colormap.Map
}

var (
	_ graphable.Graphable = (*Collection3)(nil)
	_ graphable.ZBounder  = (*Collection3)(nil)
)

// New3 returns an empty, visible 3-D collection in auto-fit mode.
func New3(name string, opts ...Option) *Collection3 {
	c := &Collection3{}
	c.Collection = *New(name, opts...)
	c.self = c
	c.recalc = c.recalcBounds3

	return c
}

// ZBounds returns the aggregated z extent over visible ZBounder
// members; with none it collapses to 0.
func (c *Collection3) ZBounds() (min, max float64) { return c.zMin, c.zMax }

// ColorMap returns the dominant map: the first visible member exposing
// its own non-nil map, or nil when no member does.
func (c *Collection3) ColorMap() *colormap.Map { return c.dominant }

// recalcBounds3 extends the x/y re-aggregation with the z extent and
// the dominant map, reporting whether any of the three moved.
func (c *Collection3) recalcBounds3() bool {
	changed := c.recalcBounds()

	zMin, zMax := math.NaN(), math.NaN()
	var dominant *colormap.Map
	for _, g := range c.graphs {
		if !g.Visible() {
			continue
		}
		zb, ok := g.(graphable.ZBounder)
		if !ok {
			continue
		}
		lo, hi := zb.ZBounds()
		zMin, zMax = extendZ(zMin, zMax, lo)
		zMin, zMax = extendZ(zMin, zMax, hi)
		if dominant == nil {
			if m := zb.ColorMap(); m != nil {
				dominant = m
			}
		}
	}
	if math.IsNaN(zMin) {
		zMin, zMax = 0, 0
	}

	if zMin != c.zMin || zMax != c.zMax {
		c.zMin, c.zMax = zMin, zMax
		changed = true
	}
	if dominant != c.dominant {
		c.dominant = dominant
		changed = true
	}

	return changed
}

// extendZ widens a running (lo, hi) pair by v, skipping non-finite
// endpoints; NaN edges mean "unset".
func extendZ(lo, hi, v float64) (float64, float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo, hi
	}
	if !(lo <= v) {
		lo = v
	}
	if !(hi >= v) {
		hi = v
	}

	return lo, hi
}
