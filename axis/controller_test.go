package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotkit/graphable"
)

// fakeSource is a hand-rolled BoundsSource for controller tests.
type fakeSource struct {
	graphable.Notifier
	bounds graphable.Bounds
	empty  bool
}

func (f *fakeSource) Bounds() graphable.Bounds { return f.bounds }
func (f *fakeSource) Empty() bool              { return f.empty }

func (f *fakeSource) set(b graphable.Bounds, empty bool) {
	f.bounds, f.empty = b, empty
	f.Emit()
}

func TestController_RecalculateGating(t *testing.T) {
	c := NewController("")

	b := graphable.Bounds{XMin: 2, XMax: 9, YMin: 0, YMax: 1}
	assert.True(t, c.Recalculate(b))
	assert.Equal(t, 0.0, c.X().Min)
	assert.Equal(t, 10.0, c.X().Max)

	// Identical input: no-op.
	assert.False(t, c.Recalculate(b))

	// Moved input that still rounds to the same axis: no change reported.
	b2 := graphable.Bounds{XMin: 2.1, XMax: 9, YMin: 0, YMax: 1}
	assert.False(t, c.Recalculate(b2))

	// Input that changes the rounded axis.
	b3 := graphable.Bounds{XMin: 2, XMax: 90, YMin: 0, YMax: 1}
	assert.True(t, c.Recalculate(b3))
	assert.Equal(t, 100.0, c.X().Max)
}

func TestController_PinnedLimits(t *testing.T) {
	c := NewController("")

	require.ErrorIs(t, c.SetXLimits(5, 1), ErrInvertedBounds)

	require.NoError(t, c.SetXLimits(0, 10))
	c.Recalculate(graphable.Bounds{XMin: 2, XMax: 900, YMin: 0, YMax: 1})

	// The pin wins over the data and is kept verbatim.
	assert.Equal(t, 0.0, c.X().Min)
	assert.Equal(t, 10.0, c.X().Max)

	c.ClearXLimits()
	assert.True(t, c.Recalculate(graphable.Bounds{XMin: 2, XMax: 900, YMin: 0, YMax: 1}))
	assert.Equal(t, 1000.0, c.X().Max)
}

func TestController_TrackFollowsAndResetsPins(t *testing.T) {
	c := NewController("")
	src := &fakeSource{bounds: graphable.Bounds{XMin: 2, XMax: 9, YMin: 2, YMax: 9}}

	sub := c.Track(src)
	assert.Equal(t, 10.0, c.X().Max)

	src.set(graphable.Bounds{XMin: 2, XMax: 90, YMin: 2, YMax: 9}, false)
	assert.Equal(t, 100.0, c.X().Max)

	// Pin, then empty the source: the pin is dropped with the data.
	require.NoError(t, c.SetXLimits(0, 50))
	src.set(graphable.Bounds{}, true)
	src.set(graphable.Bounds{XMin: 2, XMax: 9, YMin: 2, YMax: 9}, false)
	assert.Equal(t, 10.0, c.X().Max)

	// Cancelled subscriptions stop tracking.
	sub.Cancel()
	src.set(graphable.Bounds{XMin: 2, XMax: 900, YMin: 2, YMax: 9}, false)
	assert.Equal(t, 10.0, c.X().Max)
}
