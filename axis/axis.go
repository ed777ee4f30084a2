package axis

import (
	"fmt"
	"math"
)

// Compute derives an Axis from the data interval [min, max].
//
// Degenerate inputs (min == max, or a non-finite bound) produce a
// single-tick axis whose two labels are the literal bounds. Inverted
// bounds are swapped. Otherwise the major unit comes from NiceUnit and the
// bounds are rounded outward onto unit multiples: the rounding target is
// inflated by 5% and biased toward zero (min(v,0) / max(v,0)) so the zero
// line is part of the axis whenever the data does not cross it.
//
// With opts.ForceBounds set the bounds are kept verbatim: the nice unit
// is used when both bounds land on its multiples, otherwise the unit
// becomes a tenth of the span.
// Compute is a total function. Complexity: O(TickCount).
func Compute(min, max float64, opts Options) Axis {
	format := opts.LabelFormat
	if format == "" {
		format = DefaultLabelFormat
	}

	if min == max || !finite(min) || !finite(max) {
		return Axis{
			Min:       min,
			Max:       max,
			MajorUnit: 0,
			TickCount: 1,
			Labels:    []string{fmt.Sprintf(format, min), fmt.Sprintf(format, max)},
		}
	}
	if min > max {
		min, max = max, min
	}

	unit := NiceUnit(min, max, opts.Horizontal)
	if opts.ForceBounds {
		if !(onMultiple(min, unit) && onMultiple(max, unit)) {
			unit = (max - min) / 10
		}
	} else {
		min = math.Floor(1.05*math.Min(min, 0)/unit) * unit
		max = math.Ceil(1.05*math.Max(max, 0)/unit) * unit
	}

	count := int(math.Round((max - min) / unit))
	if count < 1 {
		count = 1
	}
	labels := make([]string, count+1)
	for i := range labels {
		labels[i] = fmt.Sprintf(format, min+unit*float64(i))
	}

	return Axis{Min: min, Max: max, MajorUnit: unit, TickCount: count, Labels: labels}
}

// Equal reports whether two axes describe the same tick scale.
// Labels follow from the numeric fields and are not compared.
func (a Axis) Equal(b Axis) bool {
	return a.Min == b.Min && a.Max == b.Max &&
		a.MajorUnit == b.MajorUnit && a.TickCount == b.TickCount
}

// onMultiple reports whether v lands exactly on a multiple of unit.
func onMultiple(v, unit float64) bool {
	return math.Mod(v, unit) == 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
