package graphable

import (
	"fmt"

	"github.com/katalvlaran/plotkit/colormap"
)

const defaultValueFormat = "%g"

// base carries the state every entity kind shares: identity, visibility,
// display scale factors, readout formatting and the change notifier.
type base struct {
	Notifier
	name    string
	visible bool
	xscale  float64
	yscale  float64
	unit    string
	format  string
	cmap    *colormap.Map
}

func newBase(name string, opts []Option) base {
	b := base{
		name:    name,
		visible: true,
		xscale:  1,
		yscale:  1,
		format:  defaultValueFormat,
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// Name returns the entity's identifying name.
func (b *base) Name() string { return b.name }

// Visible reports whether the entity takes part in aggregation.
func (b *base) Visible() bool { return b.visible }

// SetVisible toggles aggregation visibility and notifies on change.
func (b *base) SetVisible(v bool) {
	if b.visible == v {
		return
	}
	b.visible = v
	b.Emit()
}

// XScale returns the display scale factor applied to x bounds.
func (b *base) XScale() float64 { return b.xscale }

// YScale returns the display scale factor applied to y bounds.
func (b *base) YScale() float64 { return b.yscale }

// SetScale replaces both display scale factors and notifies.
func (b *base) SetScale(x, y float64) {
	b.xscale, b.yscale = x, y
	b.Emit()
}

// Unit returns the unit suffix used in cursor readouts.
func (b *base) Unit() string { return b.unit }

// ColorMap returns the entity's own map, or nil when it is colored by
// the collection's dominant map.
func (b *base) ColorMap() *colormap.Map { return b.cmap }

// SetColorMap replaces the entity's own map (nil falls back to the
// dominant map) and notifies.
func (b *base) SetColorMap(m *colormap.Map) {
	b.cmap = m
	b.Emit()
}

// text renders a cursor readout in the entity's format and unit.
func (b *base) text(v float64, withName bool) string {
	txt := fmt.Sprintf(b.format, v)
	if b.unit != "" {
		txt += " " + b.unit
	}
	if withName && b.name != "" {
		txt = b.name + ": " + txt
	}

	return txt
}
