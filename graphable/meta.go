package graphable

import (
	"fmt"
	"strings"
)

// Channel is one named per-point metadata track of a MetaSeries.
// Values runs parallel to the series points; Format defaults to "%g".
type Channel struct {
	Name   string
	Unit   string
	Format string
	Values []float64
}

// MetaSeries is a Series annotated with N parallel scalar channels.
// Channels never run their own cursor search: they are sampled with the
// exact winning index and fraction of the primary series query.
type MetaSeries struct {
	Series
	channels []Channel
}

var (
	_ Graphable   = (*MetaSeries)(nil)
	_ AutoBounder = (*MetaSeries)(nil)
)

// NewMetaSeries builds a MetaSeries; every channel must be exactly as
// long as the coordinate buffers. Returns ErrLengthMismatch or a wrapped
// ErrChannelLength. All buffers are deep-copied. Complexity: O(n·(N+1)).
func NewMetaSeries(name string, xs, ys []float64, channels []Channel, opts ...Option) (*MetaSeries, error) {
	s, err := NewSeries(name, xs, ys, opts...)
	if err != nil {
		return nil, err
	}
	for _, ch := range channels {
		if len(ch.Values) != len(xs) {
			return nil, fmt.Errorf("%w: channel %q has %d values for %d points",
				ErrChannelLength, ch.Name, len(ch.Values), len(xs))
		}
	}

	m := &MetaSeries{Series: *s, channels: make([]Channel, len(channels))}
	for i, ch := range channels {
		ch.Values = append([]float64(nil), ch.Values...)
		m.channels[i] = ch
	}

	return m, nil
}

// ChannelCount returns the number of metadata channels.
func (m *MetaSeries) ChannelCount() int { return len(m.channels) }

// Channel returns the i-th channel. The Values slice is shared with the
// series; treat it as read-only.
func (m *MetaSeries) Channel(i int) (Channel, error) {
	if i < 0 || i >= len(m.channels) {
		return Channel{}, ErrIndexOutOfRange
	}

	return m.channels[i], nil
}

// ChannelValueAt samples channel i at the cursor using the same winning
// index and fraction as the primary series query.
func (m *MetaSeries) ChannelValueAt(i int, x, y, domainWidth, rangeHeight float64) (float64, error) {
	if i < 0 || i >= len(m.channels) {
		return 0, ErrIndexOutOfRange
	}
	if m.Len() == 0 {
		return 0, nil
	}

	_, idx, frac := m.query(x, y, domainWidth, rangeHeight)

	return sampleChannel(m.channels[i].Values, idx, frac), nil
}

// ValueText reports the primary readout followed by one line per
// channel, each sampled at the primary query's winning position.
func (m *MetaSeries) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	v, idx, frac := m.query(x, y, domainWidth, rangeHeight)

	lines := make([]string, 0, len(m.channels)+1)
	lines = append(lines, m.text(v, withName))
	for _, ch := range m.channels {
		cv := 0.0
		if m.Len() > 0 {
			cv = sampleChannel(ch.Values, idx, frac)
		}
		format := ch.Format
		if format == "" {
			format = defaultValueFormat
		}
		line := fmt.Sprintf(format, cv)
		if ch.Unit != "" {
			line += " " + ch.Unit
		}
		if ch.Name != "" {
			line = ch.Name + ": " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// SetValues replaces the coordinate buffers; the new length must still
// match every channel.
func (m *MetaSeries) SetValues(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for _, ch := range m.channels {
		if len(ch.Values) != len(xs) {
			return ErrChannelLength
		}
	}

	return m.Series.SetValues(xs, ys)
}

// AppendPoint grows the series and every channel by one point; it
// shadows the Series method so channel parity cannot silently break.
func (m *MetaSeries) AppendPoint(x, y float64, channelValues ...float64) error {
	if len(channelValues) != len(m.channels) {
		return ErrChannelLength
	}
	for i := range m.channels {
		m.channels[i].Values = append(m.channels[i].Values, channelValues[i])
	}
	m.Series.AppendPoint(x, y)

	return nil
}

// SetChannelValues replaces one channel's buffer and notifies.
func (m *MetaSeries) SetChannelValues(i int, values []float64) error {
	if i < 0 || i >= len(m.channels) {
		return ErrIndexOutOfRange
	}
	if len(values) != m.Len() {
		return ErrChannelLength
	}
	m.channels[i].Values = append([]float64(nil), values...)
	m.Emit()

	return nil
}

func sampleChannel(values []float64, idx int, frac float64) float64 {
	if frac == 0 {
		return values[idx]
	}

	return lerp(values[idx], values[idx+1], frac)
}
