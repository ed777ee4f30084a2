package graphable

import (
	"image/color"
	"math"

	"github.com/katalvlaran/plotkit/colormap"
)

// Surface is a 2-D array of samples over a regular grid: values[ix][iy]
// covers [xMin,xMax]×[yMin,yMax]. Cursor lookups are bilinear, degrading
// to 1-D interpolation on exact rows or columns. The color axis
// (ColorBounds) is independent of the derived z bounds and follows them
// only while unpinned.
type Surface struct {
	base
	vals   [][]float64
	nx, ny int

	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64

	colorMin, colorMax float64
	colorPinned        bool
	transpose          bool
}

var (
	_ Graphable   = (*Surface)(nil)
	_ ZBounder    = (*Surface)(nil)
	_ AutoBounder = (*Surface)(nil)
)

// NewSurface builds a Surface over the given axis ranges. The grid must
// be rectangular and non-empty (ErrEmptyGrid, ErrRaggedGrid) and the
// ranges finite (ErrNonFiniteBound). The grid is deep-copied. A surface
// without an explicit WithColorMap option gets its own colormap.Default.
// Complexity: O(nx·ny).
func NewSurface(name string, values [][]float64, xMin, xMax, yMin, yMax float64, opts ...Option) (*Surface, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	ny := len(values[0])
	for _, col := range values {
		if len(col) != ny {
			return nil, ErrRaggedGrid
		}
	}
	if !finite(xMin) || !finite(xMax) || !finite(yMin) || !finite(yMax) {
		return nil, ErrNonFiniteBound
	}

	s := &Surface{
		base: newBase(name, opts),
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
	}
	if s.cmap == nil {
		s.cmap = colormap.Default()
	}
	s.store(values)

	return s, nil
}

// SetValues replaces the whole grid — the surface's single bulk mutation
// entry point. Z bounds are re-derived and, while the color axis is
// unpinned, it follows them. Complexity: O(nx·ny).
func (s *Surface) SetValues(values [][]float64) error {
	if len(values) == 0 || len(values[0]) == 0 {
		return ErrEmptyGrid
	}
	ny := len(values[0])
	for _, col := range values {
		if len(col) != ny {
			return ErrRaggedGrid
		}
	}
	s.store(values)
	s.Emit()

	return nil
}

func (s *Surface) store(values [][]float64) {
	s.nx, s.ny = len(values), len(values[0])
	s.vals = make([][]float64, s.nx)
	for i := range values {
		s.vals[i] = append([]float64(nil), values[i]...)
	}

	zMin, zMax := math.NaN(), math.NaN()
	for i := range s.vals {
		for j := range s.vals[i] {
			zMin, zMax = extendScalar(zMin, zMax, s.vals[i][j])
		}
	}
	if math.IsNaN(zMin) {
		zMin, zMax = 0, 0
	}
	s.zMin, s.zMax = zMin, zMax
	if !s.colorPinned {
		s.colorMin, s.colorMax = zMin, zMax
	}
}

// Dims returns the grid dimensions (columns along x, rows along y).
func (s *Surface) Dims() (nx, ny int) { return s.nx, s.ny }

// Bounds returns the declared x/y ranges.
func (s *Surface) Bounds() Bounds {
	return Bounds{XMin: s.xMin, XMax: s.xMax, YMin: s.yMin, YMax: s.yMax}
}

// ZBounds returns the z extent derived from the current grid.
func (s *Surface) ZBounds() (min, max float64) { return s.zMin, s.zMax }

// ColorBounds returns the color-axis range used by ColorAt.
func (s *Surface) ColorBounds() (min, max float64) { return s.colorMin, s.colorMax }

// SetColorBounds pins the color axis independently of the z bounds.
// Returns ErrNonFiniteBound or ErrInvertedBounds on bad input.
func (s *Surface) SetColorBounds(min, max float64) error {
	if !finite(min) || !finite(max) {
		return ErrNonFiniteBound
	}
	if min > max {
		return ErrInvertedBounds
	}
	s.colorMin, s.colorMax = min, max
	s.colorPinned = true
	s.Emit()

	return nil
}

// ClearColorBounds unpins the color axis; it follows the z bounds again.
func (s *Surface) ClearColorBounds() {
	s.colorPinned = false
	s.colorMin, s.colorMax = s.zMin, s.zMax
	s.Emit()
}

// Transpose reports whether grid indices are swapped relative to the axes.
func (s *Surface) Transpose() bool { return s.transpose }

// SetTranspose swaps the grid's x/y index roles and notifies.
func (s *Surface) SetTranspose(t bool) {
	if s.transpose == t {
		return
	}
	s.transpose = t
	s.Emit()
}

// ValueAt reports the bilinearly interpolated sample under the cursor.
// Coordinates are clamped onto the grid; exact row or column hits
// degrade to 1-D interpolation and exact corners return stored samples.
// The axis spans are ignored: surface lookups are positional.
func (s *Surface) ValueAt(x, y, _, _ float64) float64 {
	countX, countY := s.nx, s.ny
	if s.transpose {
		countX, countY = s.ny, s.nx
	}

	fx := cellCoord(x, s.xMin, s.xMax, countX)
	fy := cellCoord(y, s.yMin, s.yMax, countY)

	i := int(math.Floor(fx))
	fxr := fx - float64(i)
	if i >= countX-1 {
		i, fxr = countX-1, 0
	}
	j := int(math.Floor(fy))
	fyr := fy - float64(j)
	if j >= countY-1 {
		j, fyr = countY-1, 0
	}

	at := func(i, j int) float64 {
		if s.transpose {
			return s.vals[j][i]
		}
		return s.vals[i][j]
	}

	switch {
	case fxr == 0 && fyr == 0:
		return at(i, j)
	case fxr == 0:
		return lerp(at(i, j), at(i, j+1), fyr)
	case fyr == 0:
		return lerp(at(i, j), at(i+1, j), fxr)
	}

	return at(i, j)*(1-fxr)*(1-fyr) +
		at(i+1, j)*fxr*(1-fyr) +
		at(i, j+1)*(1-fxr)*fyr +
		at(i+1, j+1)*fxr*fyr
}

// ValueText reports the formatted cursor readout.
func (s *Surface) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	return s.text(s.ValueAt(x, y, domainWidth, rangeHeight), withName)
}

// ColorAt maps the sample under the cursor through the surface's color
// map, normalized by the color axis. A degenerate color axis maps
// everything to the middle of the ramp.
func (s *Surface) ColorAt(x, y float64) color.Color {
	v := s.ValueAt(x, y, 0, 0)
	if s.colorMax == s.colorMin {
		return s.cmap.Lookup(0.5)
	}

	return s.cmap.Lookup((v - s.colorMin) / (s.colorMax - s.colorMin))
}

// AutoBounds implements the surface auto-fit rule: scan inward from each
// of the four edges until the first row/column containing a sample
// accepted by the surface's own filter, and convert those edge indices
// to axis units. An entirely filtered surface falls back to its declared
// bounds. Complexity: O(nx·ny).
func (s *Surface) AutoBounds() (Bounds, bool) {
	countX, countY := s.nx, s.ny
	if s.transpose {
		countX, countY = s.ny, s.nx
	}
	at := func(i, j int) float64 {
		if s.transpose {
			return s.vals[j][i]
		}
		return s.vals[i][j]
	}
	colHas := func(i int) bool {
		for j := 0; j < countY; j++ {
			if s.cmap.Accepts(at(i, j)) {
				return true
			}
		}
		return false
	}
	rowHas := func(j int) bool {
		for i := 0; i < countX; i++ {
			if s.cmap.Accepts(at(i, j)) {
				return true
			}
		}
		return false
	}

	iMin := 0
	for iMin < countX && !colHas(iMin) {
		iMin++
	}
	if iMin == countX {
		// Entirely filtered: fall back to the declared bounds.
		return s.Bounds(), true
	}
	iMax := countX - 1
	for !colHas(iMax) {
		iMax--
	}
	jMin := 0
	for !rowHas(jMin) {
		jMin++
	}
	jMax := countY - 1
	for !rowHas(jMax) {
		jMax--
	}

	return Bounds{
		XMin: s.axisUnit(iMin, s.xMin, s.xMax, countX),
		XMax: s.axisUnit(iMax, s.xMin, s.xMax, countX),
		YMin: s.axisUnit(jMin, s.yMin, s.yMax, countY),
		YMax: s.axisUnit(jMax, s.yMin, s.yMax, countY),
	}, true
}

func (s *Surface) axisUnit(i int, min, max float64, n int) float64 {
	if n <= 1 {
		return min
	}

	return min + float64(i)*(max-min)/float64(n-1)
}

// cellCoord maps an axis value onto continuous cell coordinates
// [0, n-1], clamped. NaN maps to 0 so every query stays total.
func cellCoord(v, min, max float64, n int) float64 {
	if n <= 1 || max == min {
		return 0
	}
	f := (v - min) / ((max - min) / float64(n-1))
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > float64(n-1):
		return float64(n - 1)
	default:
		return f
	}
}

// extendScalar widens a running (lo, hi) pair by v, skipping non-finite
// samples; NaN edges mean "unset".
func extendScalar(lo, hi, v float64) (float64, float64) {
	if !finite(v) {
		return lo, hi
	}
	if !(lo <= v) {
		lo = v
	}
	if !(hi >= v) {
		hi = v
	}

	return lo, hi
}
