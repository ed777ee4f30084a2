package axis

import "gonum.org/v1/plot"

// Ticks converts a into gonum plot.Tick marks, one per label.
// A degenerate axis yields a single tick at its lower bound.
func (a Axis) Ticks() []plot.Tick {
	if a.MajorUnit == 0 {
		return []plot.Tick{{Value: a.Min, Label: a.Labels[0]}}
	}

	ticks := make([]plot.Tick, 0, a.TickCount+1)
	for i := 0; i <= a.TickCount; i++ {
		ticks = append(ticks, plot.Tick{
			Value: a.Min + a.MajorUnit*float64(i),
			Label: a.Labels[i],
		})
	}

	return ticks
}

// Ticker adapts Compute to gonum's plot.Ticker, so a gonum axis can use
// plotkit's nice-unit algorithm in place of plot.DefaultTicks.
type Ticker struct {
	Opts Options
}

var _ plot.Ticker = Ticker{}

// Ticks implements plot.Ticker.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	return Compute(min, max, t.Opts).Ticks()
}
