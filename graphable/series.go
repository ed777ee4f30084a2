package graphable

import "math"

// Series is an ordered 2-D line. Two derived flags pick the lookup
// algorithm: sorted (x non-decreasing) series interpolate along x,
// equal-step series in O(1); unsorted series fall back to normalized
// nearest-segment projection.
type Series struct {
	base
	xs, ys []float64

	sorted     bool
	equalSteps bool
	bounds     Bounds
}

var (
	_ Graphable   = (*Series)(nil)
	_ AutoBounder = (*Series)(nil)
	_ Scaler      = (*Series)(nil)
)

// NewSeries builds a Series from parallel coordinate buffers, which are
// deep-copied. Returns ErrLengthMismatch when len(xs) != len(ys).
// Complexity: O(n).
func NewSeries(name string, xs, ys []float64, opts ...Option) (*Series, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	s := &Series{base: newBase(name, opts)}
	s.xs = append([]float64(nil), xs...)
	s.ys = append([]float64(nil), ys...)
	s.refresh()

	return s, nil
}

// SetValues replaces the whole buffer — the series' single bulk mutation
// entry point. Flags and bounds are re-derived synchronously before
// listeners are notified. Complexity: O(n).
func (s *Series) SetValues(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	s.xs = append(s.xs[:0], xs...)
	s.ys = append(s.ys[:0], ys...)
	s.refresh()
	s.Emit()

	return nil
}

// AppendPoint grows the series by one point, re-deriving flags and
// bounds, and notifies.
func (s *Series) AppendPoint(x, y float64) {
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
	s.refresh()
	s.Emit()
}

// Len returns the number of points.
func (s *Series) Len() int { return len(s.xs) }

// Point returns the i-th coordinate pair.
func (s *Series) Point(i int) (x, y float64, err error) {
	if i < 0 || i >= len(s.xs) {
		return 0, 0, ErrIndexOutOfRange
	}

	return s.xs[i], s.ys[i], nil
}

// Sorted reports whether x is non-decreasing.
func (s *Series) Sorted() bool { return s.sorted }

// EqualSteps reports whether x spacing is constant.
func (s *Series) EqualSteps() bool { return s.equalSteps }

// Bounds returns the derived extent; an empty series collapses to 0.
func (s *Series) Bounds() Bounds { return s.bounds }

// ValueAt reports the interpolated y under the cursor. Sorted series
// interpolate along x (the cursor y and the axis spans are ignored);
// unsorted series project onto the nearest segment after normalizing
// both axes by (domainWidth, rangeHeight).
func (s *Series) ValueAt(x, y, domainWidth, rangeHeight float64) float64 {
	v, _, _ := s.query(x, y, domainWidth, rangeHeight)
	return v
}

// ValueText reports the formatted cursor readout.
func (s *Series) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	return s.text(s.ValueAt(x, y, domainWidth, rangeHeight), withName)
}

// AutoBounds implements the series auto-fit rule: points whose y is
// rejected by the owning color map's filter do not expand bounds, and
// points with non-finite x are skipped entirely.
func (s *Series) AutoBounds() (Bounds, bool) {
	b := UnsetBounds()
	for i := range s.xs {
		if !finite(s.xs[i]) {
			continue
		}
		if s.cmap != nil && !s.cmap.Accepts(s.ys[i]) {
			continue
		}
		b.ExtendX(s.xs[i])
		b.ExtendY(s.ys[i])
	}

	return b, true
}

// query resolves a cursor position to (value, winning index, fraction).
// MetaSeries reuses the index/fraction pair to sample its channels with
// the same winning position.
func (s *Series) query(x, y, w, h float64) (v float64, idx int, frac float64) {
	n := len(s.xs)
	switch {
	case n == 0:
		return 0, 0, 0
	case n == 1:
		return s.ys[0], 0, 0
	}

	if s.sorted {
		if s.equalSteps {
			return s.queryEqualStep(x)
		}
		return s.querySorted(x)
	}

	idx, frac = nearestSegment(s.xs, s.ys, x, y, w, h)

	return lerp(s.ys[idx], s.ys[idx+1], frac), idx, frac
}

// queryEqualStep is the O(1) lookup for sorted, evenly spaced series.
// A zero fractional part returns the stored sample exactly.
func (s *Series) queryEqualStep(x float64) (float64, int, float64) {
	n := len(s.xs)
	lo, hi := s.xs[0], s.xs[n-1]
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}

	step := s.xs[1] - s.xs[0]
	if step == 0 {
		return s.ys[0], 0, 0
	}

	t := (x - lo) / step
	i := int(math.Floor(t))
	if i >= n-1 {
		return s.ys[n-1], n - 1, 0
	}
	if i < 0 {
		i = 0
	}
	f := t - float64(i)
	if f == 0 {
		return s.ys[i], i, 0
	}

	return lerp(s.ys[i], s.ys[i+1], f), i, f
}

// querySorted clamps at the ends, then scans backward for the first
// index whose x lies strictly below the query and interpolates with the
// local fraction. The linear scan keeps tie and boundary semantics
// exact; see DESIGN.md for the binary-search tradeoff.
func (s *Series) querySorted(x float64) (float64, int, float64) {
	n := len(s.xs)
	if x <= s.xs[0] {
		return s.ys[0], 0, 0
	}
	if x >= s.xs[n-1] {
		return s.ys[n-1], n - 1, 0
	}

	for i := n - 2; i >= 0; i-- {
		if s.xs[i] < x {
			f := (x - s.xs[i]) / (s.xs[i+1] - s.xs[i])
			return lerp(s.ys[i], s.ys[i+1], f), i, f
		}
	}

	return s.ys[0], 0, 0
}

// refresh re-derives the lookup flags and bounds from the buffer.
func (s *Series) refresh() {
	n := len(s.xs)

	s.sorted = true
	for i := 1; i < n; i++ {
		if s.xs[i] < s.xs[i-1] {
			s.sorted = false
			break
		}
	}

	s.equalSteps = true
	if n > 2 {
		step := s.xs[1] - s.xs[0]
		for i := 2; i < n; i++ {
			if s.xs[i]-s.xs[i-1] != step {
				s.equalSteps = false
				break
			}
		}
	}

	b := UnsetBounds()
	for i := range s.xs {
		b.ExtendX(s.xs[i])
		b.ExtendY(s.ys[i])
	}
	s.bounds = b.OrZero()
}
