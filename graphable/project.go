package graphable

import "math"

// nearestSegment finds the polyline segment closest to the query point.
// Both the query offset and the candidate offset are divided
// componentwise by (w, h) so the two axes carry equal visual weight;
// a zero or non-finite span falls back to 1. The projection parameter is
// clamped to the segment, and on distance ties the earliest segment
// wins. Complexity: O(n).
func nearestSegment(xs, ys []float64, x, y, w, h float64) (idx int, frac float64) {
	if !finite(w) || w == 0 {
		w = 1
	}
	if !finite(h) || h == 0 {
		h = 1
	}

	best := math.Inf(1)
	for i := 0; i+1 < len(xs); i++ {
		dx := (xs[i+1] - xs[i]) / w
		dy := (ys[i+1] - ys[i]) / h
		qx := (x - xs[i]) / w
		qy := (y - ys[i]) / h

		t := 0.0
		if den := dx*dx + dy*dy; den > 0 {
			t = clamp01((qx*dx + qy*dy) / den)
		}

		ex := qx - t*dx
		ey := qy - t*dy
		if d2 := ex*ex + ey*ey; d2 < best {
			best, idx, frac = d2, i, t
		}
	}

	return idx, frac
}
