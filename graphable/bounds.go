package graphable

import "math"

// Bounds is an axis-aligned data extent. A NaN edge means "unset": no
// finite sample has been seen on that axis yet. Running-extremum updates
// treat unset edges as always losing the comparison.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// UnsetBounds returns a Bounds with every edge unset.
func UnsetBounds() Bounds {
	nan := math.NaN()
	return Bounds{XMin: nan, XMax: nan, YMin: nan, YMax: nan}
}

// ExtendX widens the x extent to include x. Non-finite values are
// ignored: bound scans exclude them by contract.
func (b *Bounds) ExtendX(x float64) {
	if !finite(x) {
		return
	}
	if !(b.XMin <= x) {
		b.XMin = x
	}
	if !(b.XMax >= x) {
		b.XMax = x
	}
}

// ExtendY widens the y extent to include y; non-finite values are ignored.
func (b *Bounds) ExtendY(y float64) {
	if !finite(y) {
		return
	}
	if !(b.YMin <= y) {
		b.YMin = y
	}
	if !(b.YMax >= y) {
		b.YMax = y
	}
}

// Merge widens b to cover o. Unset edges of o contribute nothing.
func (b *Bounds) Merge(o Bounds) {
	b.ExtendX(o.XMin)
	b.ExtendX(o.XMax)
	b.ExtendY(o.YMin)
	b.ExtendY(o.YMax)
}

// Unset reports whether any edge is still unset.
func (b Bounds) Unset() bool {
	return math.IsNaN(b.XMin) || math.IsNaN(b.XMax) ||
		math.IsNaN(b.YMin) || math.IsNaN(b.YMax)
}

// OrZero collapses a partially or fully unset extent to the origin:
// if any bound remains unset, all four become 0.
func (b Bounds) OrZero() Bounds {
	if b.Unset() {
		return Bounds{}
	}

	return b
}

// Equal compares extents edge by edge, treating unset (NaN) edges as
// equal to each other.
func (b Bounds) Equal(o Bounds) bool {
	return eqOrBothNaN(b.XMin, o.XMin) && eqOrBothNaN(b.XMax, o.XMax) &&
		eqOrBothNaN(b.YMin, o.YMin) && eqOrBothNaN(b.YMax, o.YMax)
}

func eqOrBothNaN(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
