package colormap

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Ranged adapts m to gonum's palette.ColorMap over the data interval
// [min,max]. The adapter holds a non-owning reference to m.
func (m *Map) Ranged(min, max float64) *Ranged {
	return &Ranged{m: m, min: min, max: max}
}

// Ranged is a palette.ColorMap view of a Map over an arbitrary interval.
type Ranged struct {
	m        *Map
	min, max float64
}

var _ palette.ColorMap = (*Ranged)(nil)

// At returns the color for v. Out-of-range and NaN values return the
// corresponding sentinel error, matching gonum's ColorMap contract.
func (r *Ranged) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, ErrNaN
	case r.min == r.max:
		return nil, ErrEmptyRange
	case v < r.min:
		return nil, ErrUnderflow
	case v > r.max:
		return nil, ErrOverflow
	}

	return r.m.Lookup((v - r.min) / (r.max - r.min)), nil
}

// Min returns the lower edge of the mapped interval.
func (r *Ranged) Min() float64 { return r.min }

// SetMin sets the lower edge of the mapped interval.
func (r *Ranged) SetMin(v float64) { r.min = v }

// Max returns the upper edge of the mapped interval.
func (r *Ranged) Max() float64 { return r.max }

// SetMax sets the upper edge of the mapped interval.
func (r *Ranged) SetMax(v float64) { r.max = v }

// Palette discretizes the underlying map into n evenly spaced swatches.
func (r *Ranged) Palette(n int) palette.Palette {
	return r.m.Palette(n)
}

// Palette discretizes m into n evenly spaced swatches implementing
// gonum's palette.Palette. n < 1 yields an empty palette.
func (m *Map) Palette(n int) palette.Palette {
	if n < 1 {
		return swatches(nil)
	}
	cs := make([]color.Color, n)
	if n == 1 {
		cs[0] = m.Lookup(0.5)
	} else {
		for i := range cs {
			cs[i] = m.Lookup(float64(i) / float64(n-1))
		}
	}

	return swatches(cs)
}

type swatches []color.Color

func (s swatches) Colors() []color.Color { return s }
