package graphable

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotkit/colormap"
)

// unitGrid is a 2×2 grid over [0,1]×[0,1] with four distinct corners:
// values[ix][iy], so (x=0,y=0)→1, (1,0)→3, (0,1)→2, (1,1)→4.
func unitGrid(t *testing.T) *Surface {
	t.Helper()
	s, err := NewSurface("s", [][]float64{{1, 2}, {3, 4}}, 0, 1, 0, 1)
	require.NoError(t, err)
	return s
}

func TestNewSurface_Errors(t *testing.T) {
	_, err := NewSurface("s", nil, 0, 1, 0, 1)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewSurface("s", [][]float64{{}}, 0, 1, 0, 1)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewSurface("s", [][]float64{{1, 2}, {3}}, 0, 1, 0, 1)
	assert.ErrorIs(t, err, ErrRaggedGrid)

	_, err = NewSurface("s", [][]float64{{1}}, 0, math.Inf(1), 0, 1)
	assert.ErrorIs(t, err, ErrNonFiniteBound)
}

func TestSurface_CornersExact(t *testing.T) {
	s := unitGrid(t)

	assert.Equal(t, 1.0, s.ValueAt(0, 0, 0, 0))
	assert.Equal(t, 3.0, s.ValueAt(1, 0, 0, 0))
	assert.Equal(t, 2.0, s.ValueAt(0, 1, 0, 0))
	assert.Equal(t, 4.0, s.ValueAt(1, 1, 0, 0))
}

func TestSurface_BilinearCenter(t *testing.T) {
	s := unitGrid(t)

	// The center of a bilinear patch is the mean of its four corners.
	assert.InDelta(t, 2.5, s.ValueAt(0.5, 0.5, 0, 0), 1e-12)
}

func TestSurface_RowColumnDegradation(t *testing.T) {
	s := unitGrid(t)

	// Exactly on a grid row or column: pure 1-D interpolation.
	assert.Equal(t, 2.0, s.ValueAt(0.5, 0, 0, 0))  // between 1 and 3
	assert.Equal(t, 1.5, s.ValueAt(0, 0.5, 0, 0))  // between 1 and 2
	assert.Equal(t, 3.5, s.ValueAt(1, 0.5, 0, 0))  // between 3 and 4
}

func TestSurface_ClampOutside(t *testing.T) {
	s := unitGrid(t)

	assert.Equal(t, 1.0, s.ValueAt(-5, -5, 0, 0))
	assert.Equal(t, 4.0, s.ValueAt(5, 5, 0, 0))
	// NaN coordinates clamp to the grid origin; the query stays total.
	assert.Equal(t, 1.0, s.ValueAt(math.NaN(), math.NaN(), 0, 0))
}

func TestSurface_Transpose(t *testing.T) {
	s := unitGrid(t)
	s.SetTranspose(true)

	// Index roles swap: the sample that lived at (x=1, y=0) now answers
	// at (x=0, y=1).
	assert.Equal(t, 1.0, s.ValueAt(0, 0, 0, 0))
	assert.Equal(t, 2.0, s.ValueAt(1, 0, 0, 0))
	assert.Equal(t, 3.0, s.ValueAt(0, 1, 0, 0))
	assert.Equal(t, 4.0, s.ValueAt(1, 1, 0, 0))
}

func TestSurface_ZAndColorBounds(t *testing.T) {
	s := unitGrid(t)

	lo, hi := s.ZBounds()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	// Unpinned color bounds follow z.
	cLo, cHi := s.ColorBounds()
	assert.Equal(t, 1.0, cLo)
	assert.Equal(t, 4.0, cHi)
}

func TestSurface_SetValuesColorBounds(t *testing.T) {
	s := unitGrid(t)

	// Unpinned: new data moves both z and color bounds.
	require.NoError(t, s.SetValues([][]float64{{10, 20}, {30, 40}}))
	cLo, cHi := s.ColorBounds()
	assert.Equal(t, 10.0, cLo)
	assert.Equal(t, 40.0, cHi)

	// Pinned: color bounds hold while z keeps tracking the data.
	require.NoError(t, s.SetColorBounds(0, 100))
	require.NoError(t, s.SetValues([][]float64{{-1, 0}, {1, 2}}))
	cLo, cHi = s.ColorBounds()
	assert.Equal(t, 0.0, cLo)
	assert.Equal(t, 100.0, cHi)
	zLo, zHi := s.ZBounds()
	assert.Equal(t, -1.0, zLo)
	assert.Equal(t, 2.0, zHi)

	// Clearing the pin snaps color bounds back onto z.
	s.ClearColorBounds()
	cLo, cHi = s.ColorBounds()
	assert.Equal(t, -1.0, cLo)
	assert.Equal(t, 2.0, cHi)
}

func TestSurface_SetColorBoundsErrors(t *testing.T) {
	s := unitGrid(t)
	assert.ErrorIs(t, s.SetColorBounds(math.NaN(), 1), ErrNonFiniteBound)
	assert.ErrorIs(t, s.SetColorBounds(2, 1), ErrInvertedBounds)
}

func TestSurface_ColorAtDegenerate(t *testing.T) {
	cm, err := colormap.New([]color.Color{color.Black, color.White})
	require.NoError(t, err)
	s, err := NewSurface("flat", [][]float64{{7, 7}, {7, 7}}, 0, 1, 0, 1,
		WithColorMap(cm))
	require.NoError(t, err)

	// A flat grid has a degenerate color axis; everything maps to the
	// middle of the ramp instead of dividing by zero.
	mid := cm.Lookup(0.5)
	assert.Equal(t, mid, s.ColorAt(0.3, 0.9))
}

func TestSurface_AutoBoundsTrimsFilteredEdges(t *testing.T) {
	nan := math.NaN()
	// 3×3 over [0,2]×[0,2]; the ix=0 column and iy=2 row are all NaN.
	s, err := NewSurface("s", [][]float64{
		{nan, nan, nan},
		{1, 2, nan},
		{3, 4, nan},
	}, 0, 2, 0, 2)
	require.NoError(t, err)

	b, ok := s.AutoBounds()
	require.True(t, ok)
	assert.Equal(t, Bounds{XMin: 1, XMax: 2, YMin: 0, YMax: 1}, b)
}

func TestSurface_AutoBoundsAllFiltered(t *testing.T) {
	nan := math.NaN()
	s, err := NewSurface("s", [][]float64{{nan, nan}, {nan, nan}}, -3, 3, -2, 2)
	require.NoError(t, err)

	// Entirely filtered surfaces fall back to their declared bounds.
	b, ok := s.AutoBounds()
	require.True(t, ok)
	assert.Equal(t, s.Bounds(), b)
}

func TestSurface_SetValuesNotifies(t *testing.T) {
	s := unitGrid(t)
	fired := 0
	s.OnChange(func() { fired++ })

	require.NoError(t, s.SetValues([][]float64{{5}}))
	s.SetTranspose(true)
	s.SetTranspose(true) // no-op
	assert.Equal(t, 2, fired)

	assert.ErrorIs(t, s.SetValues(nil), ErrEmptyGrid)
	assert.Equal(t, 2, fired)
}
