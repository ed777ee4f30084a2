package graphable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContourMask_Errors(t *testing.T) {
	field := func(x, y float64) float64 { return x + y }

	_, err := NewContourMask("c", nil, 0, 1, 0, 1, 2, 2, nil)
	assert.ErrorIs(t, err, ErrNilField)

	_, err = NewContourMask("c", field, 0, 1, 0, 1, 1, 2, nil)
	assert.ErrorIs(t, err, ErrBadResolution)

	_, err = NewContourMask("c", field, 0, math.NaN(), 0, 1, 2, 2, nil)
	assert.ErrorIs(t, err, ErrNonFiniteBound)
}

func TestContourMask_DefaultCriteria(t *testing.T) {
	// field >= 0 exactly on and above the anti-diagonal of [-1,1]².
	c, err := NewContourMask("c", func(x, y float64) float64 { return x + y },
		-1, 1, -1, 1, 21, 21, nil)
	require.NoError(t, err)

	assert.True(t, c.MaskAt(1, 1))
	assert.True(t, c.MaskAt(0, 0))
	assert.False(t, c.MaskAt(-1, -1))
	assert.False(t, c.MaskAt(-0.8, -0.5))
}

func TestContourMask_CustomCriteriaAndResample(t *testing.T) {
	threshold := 0.5
	field := func(x, y float64) float64 { return x*x + y*y }
	inside := func(v float64) bool { return v < threshold }

	c, err := NewContourMask("disk", field, -1, 1, -1, 1, 41, 41, inside)
	require.NoError(t, err)

	assert.True(t, c.MaskAt(0, 0))
	assert.False(t, c.MaskAt(1, 0))

	// The mask is a snapshot: moving the threshold changes nothing
	// until Resample.
	threshold = 2.5
	assert.False(t, c.MaskAt(1, 0))

	fired := 0
	c.OnChange(func() { fired++ })
	c.Resample()
	assert.Equal(t, 1, fired)
	assert.True(t, c.MaskAt(1, 0))
}

func TestContourMask_ValueAtBypassesMask(t *testing.T) {
	c, err := NewContourMask("c", func(x, y float64) float64 { return x * y },
		0, 1, 0, 1, 2, 2, nil)
	require.NoError(t, err)

	// Readouts evaluate the field directly, even off-grid.
	assert.Equal(t, 0.25, c.ValueAt(0.5, 0.5, 0, 0))
	assert.Equal(t, 12.0, c.ValueAt(3, 4, 0, 0))
}

func TestContourMask_NoAutoFitContribution(t *testing.T) {
	c, err := NewContourMask("c", func(x, y float64) float64 { return x },
		0, 1, 0, 1, 2, 2, nil)
	require.NoError(t, err)

	_, ok := c.AutoBounds()
	assert.False(t, ok)
	assert.Equal(t, Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, c.Bounds())
}
