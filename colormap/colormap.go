package colormap

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Map converts scalar values in [0,1] to colors. It is either list-backed
// (ordered stops, stepped or smoothly blended) or function-backed.
// The zero value is not usable; construct with New or NewFunc.
//
// A Map is treated as an immutable value object: entities share map
// instances without owning them and use Clone when an independent copy is
// needed.
type Map struct {
	colors   []color.Color
	fn       func(float64) color.Color
	stepped  bool
	filter   Filter
	sentinel color.Color
}

// New builds a list-backed Map from at least one color stop.
// Returns ErrNoColors when stops is empty.
// Complexity: O(len(stops)) time and memory.
func New(stops []color.Color, opts ...Option) (*Map, error) {
	if len(stops) == 0 {
		return nil, ErrNoColors
	}
	m := newBase(opts)
	// Deep copy to prevent external mutation.
	m.colors = make([]color.Color, len(stops))
	copy(m.colors, stops)

	return m, nil
}

// NewFunc builds a function-backed Map. The function is called with its
// argument clamped to [0,1]. Returns ErrNilFunc when fn is nil.
func NewFunc(fn func(float64) color.Color, opts ...Option) (*Map, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	m := newBase(opts)
	m.fn = fn

	return m, nil
}

func newBase(opts []Option) *Map {
	m := &Map{
		filter:   FiniteFilter,
		sentinel: color.RGBA{},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Lookup converts v to a color. Values rejected by the filter return the
// sentinel color; everything else is clamped to [0,1] first. Lookup is a
// total function. Complexity: O(1).
func (m *Map) Lookup(v float64) color.Color {
	if !m.filter(v) {
		return m.sentinel
	}
	if m.fn != nil {
		return m.fn(clamp01(v))
	}

	n := len(m.colors)
	if n == 1 {
		return m.colors[0]
	}

	t := clamp01(v) * float64(n)
	idx := int(math.Floor(t))
	if idx > n-1 {
		idx = n - 1
	}
	if m.stepped {
		return m.colors[idx]
	}

	hi := idx + 1
	if hi > n-1 {
		hi = n - 1
	}

	return blend(m.colors[idx], m.colors[hi], t-float64(idx))
}

// Accepts reports whether v passes the map's filter predicate.
// Auto-fit bound scans use this to skip masked samples.
func (m *Map) Accepts(v float64) bool {
	return m.filter(v)
}

// Sentinel returns the color produced for filtered-out values.
func (m *Map) Sentinel() color.Color {
	return m.sentinel
}

// Stepped reports whether the map returns stops verbatim instead of blending.
func (m *Map) Stepped() bool {
	return m.stepped
}

// Count returns the number of color stops; zero for function-backed maps.
func (m *Map) Count() int {
	return len(m.colors)
}

// Clone returns an independent copy of m. The filter and lookup functions
// are shared; the stop list is deep-copied.
func (m *Map) Clone() *Map {
	c := &Map{
		fn:       m.fn,
		stepped:  m.stepped,
		filter:   m.filter,
		sentinel: m.sentinel,
	}
	if m.colors != nil {
		c.colors = make([]color.Color, len(m.colors))
		copy(c.colors, m.colors)
	}

	return c
}

// blend mixes c1 toward c2 by t in RGB space. go-colorful rejects colors
// with zero alpha, in which case a plain component interpolation is used.
func blend(c1, c2 color.Color, t float64) color.Color {
	a, ok1 := colorful.MakeColor(c1)
	b, ok2 := colorful.MakeColor(c2)
	if !ok1 || !ok2 {
		return lerpRGBA(c1, c2, t)
	}

	return a.BlendRgb(b, t)
}

// lerpRGBA interpolates componentwise in the 16-bit premultiplied space.
func lerpRGBA(c1, c2 color.Color, t float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	mix := func(u, v uint32) uint16 {
		return uint16(float64(u) + t*(float64(v)-float64(u)))
	}

	return color.RGBA64{R: mix(r1, r2), G: mix(g1, g2), B: mix(b1, b2), A: mix(a1, a2)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
