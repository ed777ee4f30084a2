package graphable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightSeries(t *testing.T) *MetaSeries {
	t.Helper()
	m, err := NewMetaSeries("alt",
		[]float64{0, 1, 2},
		[]float64{0, 10, 20},
		[]Channel{
			{Name: "speed", Unit: "m/s", Values: []float64{100, 200, 300}},
			{Name: "fuel", Format: "%.1f", Values: []float64{9, 8, 7}},
		},
		WithUnit("m"))
	require.NoError(t, err)
	return m
}

func TestNewMetaSeries_ChannelLength(t *testing.T) {
	_, err := NewMetaSeries("m",
		[]float64{0, 1},
		[]float64{0, 1},
		[]Channel{{Name: "c", Values: []float64{1}}})
	require.ErrorIs(t, err, ErrChannelLength)
}

func TestMetaSeries_ChannelsShareWinningPosition(t *testing.T) {
	m := flightSeries(t)

	// Primary query at x=0.5 wins segment 0 with fraction 0.5; every
	// channel is sampled at that exact position, never re-searched.
	assert.Equal(t, 5.0, m.ValueAt(0.5, 0, 0, 0))

	v, err := m.ChannelValueAt(0, 0.5, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)

	v, err = m.ChannelValueAt(1, 0.5, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8.5, v)

	// Knot queries return stored channel samples exactly.
	v, err = m.ChannelValueAt(0, 1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)

	_, err = m.ChannelValueAt(5, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMetaSeries_ValueTextMultiLine(t *testing.T) {
	m := flightSeries(t)

	assert.Equal(t, "10 m\nspeed: 200 m/s\nfuel: 8.0", m.ValueText(1, 0, 0, 0, false))
	assert.Equal(t, "alt: 10 m\nspeed: 200 m/s\nfuel: 8.0", m.ValueText(1, 0, 0, 0, true))
}

func TestMetaSeries_AppendPointKeepsParity(t *testing.T) {
	m := flightSeries(t)

	assert.ErrorIs(t, m.AppendPoint(3, 30), ErrChannelLength)
	assert.Equal(t, 3, m.Len())

	require.NoError(t, m.AppendPoint(3, 30, 400, 6))
	assert.Equal(t, 4, m.Len())
	ch, err := m.Channel(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300, 400}, ch.Values)
}

func TestMetaSeries_SetValuesChecksParity(t *testing.T) {
	m := flightSeries(t)

	// Shrinking the coordinates would orphan channel samples.
	assert.ErrorIs(t, m.SetValues([]float64{0, 1}, []float64{0, 1}), ErrChannelLength)

	require.NoError(t, m.SetValues([]float64{0, 2, 4}, []float64{1, 2, 3}))
	assert.Equal(t, 2.0, m.ValueAt(2, 0, 0, 0))
}

func TestMetaSeries_SetChannelValues(t *testing.T) {
	m := flightSeries(t)

	assert.ErrorIs(t, m.SetChannelValues(0, []float64{1}), ErrChannelLength)
	assert.ErrorIs(t, m.SetChannelValues(9, []float64{1, 2, 3}), ErrIndexOutOfRange)

	fired := 0
	m.OnChange(func() { fired++ })
	require.NoError(t, m.SetChannelValues(0, []float64{5, 6, 7}))
	assert.Equal(t, 1, fired)

	v, err := m.ChannelValueAt(0, 1, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}
