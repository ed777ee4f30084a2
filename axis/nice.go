package axis

import "math"

// Orientation-specific tick-density constants. A horizontal axis fits
// fewer labels per span than a vertical one, so its threshold is lower.
const (
	cHorizontal = 12.0 / 7.0
	cVertical   = 40.0 / 21.0
	cSpan       = 18.0 / 11.0
)

// NiceUnit selects the major tick unit for the interval [min, max].
//
// When min and max differ in sign the choice is driven by the raw span
// via NiceUnitSpan. Otherwise the magnitude max(max, -min) is normalized
// by its order of magnitude and compared against the orientation constant
// c: a normalized range above 5c yields 2·oom, above 2.5c yields oom,
// above c yields 0.5·oom, and anything smaller yields 0.2·oom — the
// familiar 1/2/5 ladder. Complexity: O(1).
func NiceUnit(min, max float64, horizontal bool) float64 {
	if (min < 0 && max > 0) || (min > 0 && max < 0) {
		return NiceUnitSpan(max - min)
	}

	c := cHorizontal
	if !horizontal {
		c = cVertical
	}

	return niceFromRange(math.Max(max, -min), c)
}

// NiceUnitSpan selects the major tick unit for a bare span, using the
// orientation-neutral constant.
func NiceUnitSpan(span float64) float64 {
	return niceFromRange(math.Abs(span), cSpan)
}

func niceFromRange(rng, c float64) float64 {
	oom := math.Pow(10, math.Floor(math.Log10(rng)))
	switch n := rng / oom; {
	case n > 5*c:
		return 2 * oom
	case n > 2.5*c:
		return oom
	case n > c:
		return 0.5 * oom
	default:
		return 0.2 * oom
	}
}
