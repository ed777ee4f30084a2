package graphable

import "math"

// Line3 is an ordered 3-D polyline projected onto the x/y plane. Cursor
// queries always use nearest-segment projection — a 3-D trace is a path,
// not a function of x — and the winning segment position samples both
// the y and the z buffer.
type Line3 struct {
	base
	xs, ys, zs []float64

	bounds     Bounds
	zMin, zMax float64
}

var (
	_ Graphable   = (*Line3)(nil)
	_ ZBounder    = (*Line3)(nil)
	_ AutoBounder = (*Line3)(nil)
	_ Scaler      = (*Line3)(nil)
)

// NewLine3 builds a Line3 from three parallel coordinate buffers, which
// are deep-copied. Returns ErrLengthMismatch when the lengths differ.
// Complexity: O(n).
func NewLine3(name string, xs, ys, zs []float64, opts ...Option) (*Line3, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, ErrLengthMismatch
	}
	l := &Line3{base: newBase(name, opts)}
	l.xs = append([]float64(nil), xs...)
	l.ys = append([]float64(nil), ys...)
	l.zs = append([]float64(nil), zs...)
	l.refresh()

	return l, nil
}

// SetValues replaces all three buffers, re-derives bounds and notifies.
func (l *Line3) SetValues(xs, ys, zs []float64) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return ErrLengthMismatch
	}
	l.xs = append(l.xs[:0], xs...)
	l.ys = append(l.ys[:0], ys...)
	l.zs = append(l.zs[:0], zs...)
	l.refresh()
	l.Emit()

	return nil
}

// AppendPoint grows the trace by one 3-D point and notifies.
func (l *Line3) AppendPoint(x, y, z float64) {
	l.xs = append(l.xs, x)
	l.ys = append(l.ys, y)
	l.zs = append(l.zs, z)
	l.refresh()
	l.Emit()
}

// Len returns the number of points.
func (l *Line3) Len() int { return len(l.xs) }

// Point returns the i-th coordinate triple.
func (l *Line3) Point(i int) (x, y, z float64, err error) {
	if i < 0 || i >= len(l.xs) {
		return 0, 0, 0, ErrIndexOutOfRange
	}

	return l.xs[i], l.ys[i], l.zs[i], nil
}

// Bounds returns the derived x/y extent; an empty trace collapses to 0.
func (l *Line3) Bounds() Bounds { return l.bounds }

// ZBounds returns the z extent derived from the current buffer.
func (l *Line3) ZBounds() (min, max float64) { return l.zMin, l.zMax }

// ValueAt reports the y of the nearest segment position, with both axes
// normalized by (domainWidth, rangeHeight) before projecting.
func (l *Line3) ValueAt(x, y, domainWidth, rangeHeight float64) float64 {
	v, _, _ := l.sample(l.ys, x, y, domainWidth, rangeHeight)
	return v
}

// ZAt reports the z of the same nearest segment position ValueAt uses.
func (l *Line3) ZAt(x, y, domainWidth, rangeHeight float64) float64 {
	v, _, _ := l.sample(l.zs, x, y, domainWidth, rangeHeight)
	return v
}

// ValueText reports the formatted cursor readout.
func (l *Line3) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	return l.text(l.ValueAt(x, y, domainWidth, rangeHeight), withName)
}

// AutoBounds implements the trace auto-fit rule: points whose y is
// rejected by the owning color map's filter do not expand bounds, and
// points with non-finite x are skipped entirely.
func (l *Line3) AutoBounds() (Bounds, bool) {
	b := UnsetBounds()
	for i := range l.xs {
		if !finite(l.xs[i]) {
			continue
		}
		if l.cmap != nil && !l.cmap.Accepts(l.ys[i]) {
			continue
		}
		b.ExtendX(l.xs[i])
		b.ExtendY(l.ys[i])
	}

	return b, true
}

// sample projects the cursor onto the nearest segment and interpolates
// the given buffer at the winning position.
func (l *Line3) sample(buf []float64, x, y, w, h float64) (v float64, idx int, frac float64) {
	switch len(l.xs) {
	case 0:
		return 0, 0, 0
	case 1:
		return buf[0], 0, 0
	}

	idx, frac = nearestSegment(l.xs, l.ys, x, y, w, h)

	return lerp(buf[idx], buf[idx+1], frac), idx, frac
}

func (l *Line3) refresh() {
	b := UnsetBounds()
	for i := range l.xs {
		b.ExtendX(l.xs[i])
		b.ExtendY(l.ys[i])
	}
	l.bounds = b.OrZero()

	zMin, zMax := math.NaN(), math.NaN()
	for _, z := range l.zs {
		zMin, zMax = extendScalar(zMin, zMax, z)
	}
	if math.IsNaN(zMin) {
		zMin, zMax = 0, 0
	}
	l.zMin, l.zMax = zMin, zMax
}
