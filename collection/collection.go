package collection

import (
	"strings"

	"github.com/katalvlaran/plotkit/axis"
	"github.com/katalvlaran/plotkit/graphable"
)

// Collection is an ordered, named set of graphable entities with an
// aggregated x/y extent. It implements Graphable itself, so collections
// nest, and BoundsSource, so an axis.Controller can track it.
//
// The collection owns each member's change subscription: Add registers
// a listener, Remove cancels it. Members keep no reference back.
type Collection struct {
	graphable.Notifier
	name     string
	visible  bool
	autoFit  bool
	selected int

	graphs []graphable.Graphable
	subs   []graphable.Subscription
	bounds graphable.Bounds

	// self and recalc let Collection3 reuse the membership machinery
	// while keeping its own identity check and z aggregation.
	self   graphable.Graphable
	recalc func() bool
}

var (
	_ graphable.Graphable = (*Collection)(nil)
	_ axis.BoundsSource   = (*Collection)(nil)
)

// New returns an empty, visible collection in auto-fit mode.
func New(name string, opts ...Option) *Collection {
	c := &Collection{name: name, visible: true, autoFit: true}
	for _, opt := range opts {
		opt(c)
	}
	c.self = c
	c.recalc = c.recalcBounds

	return c
}

// Name returns the collection's identifying name.
func (c *Collection) Name() string { return c.name }

// Visible reports whether the collection takes part in parent aggregation.
func (c *Collection) Visible() bool { return c.visible }

// SetVisible toggles parent-aggregation visibility and notifies on change.
func (c *Collection) SetVisible(v bool) {
	if c.visible == v {
		return
	}
	c.visible = v
	c.Emit()
}

// AutoFit reports whether the collection aggregates auto-fit bounds.
func (c *Collection) AutoFit() bool { return c.autoFit }

// SetAutoFit switches between auto-fit and verbatim aggregation,
// re-aggregating immediately.
func (c *Collection) SetAutoFit(auto bool) {
	if c.autoFit == auto {
		return
	}
	c.autoFit = auto
	c.recalc()
	c.Emit()
}

// Len returns the number of members.
func (c *Collection) Len() int { return len(c.graphs) }

// Empty reports whether the collection has no members.
func (c *Collection) Empty() bool { return len(c.graphs) == 0 }

// Bounds returns the aggregated extent over visible members; an empty
// or fully invisible collection collapses to 0.
func (c *Collection) Bounds() graphable.Bounds { return c.bounds }

// Add appends g, subscribes to its changes and re-aggregates.
// Returns ErrNilGraphable, ErrSelfReference or ErrDuplicateName.
// Complexity: O(len + cost of one re-aggregation).
func (c *Collection) Add(g graphable.Graphable) error {
	if g == nil {
		return ErrNilGraphable
	}
	if g == c.self {
		return ErrSelfReference
	}
	for _, existing := range c.graphs {
		if existing.Name() == g.Name() {
			return ErrDuplicateName
		}
	}

	c.graphs = append(c.graphs, g)
	c.subs = append(c.subs, g.OnChange(c.childChanged))
	c.recalc()
	c.Emit()

	return nil
}

// Remove detaches the member with the given name; see RemoveAt.
func (c *Collection) Remove(name string) error {
	for i, g := range c.graphs {
		if g.Name() == name {
			return c.RemoveAt(i)
		}
	}

	return ErrNotFound
}

// RemoveAt detaches the i-th member, cancelling its subscription, and
// re-aggregates. The selection index is clamped onto the shrunk list.
func (c *Collection) RemoveAt(i int) error {
	if i < 0 || i >= len(c.graphs) {
		return ErrIndexOutOfRange
	}
	c.subs[i].Cancel()
	c.graphs = append(c.graphs[:i], c.graphs[i+1:]...)
	c.subs = append(c.subs[:i], c.subs[i+1:]...)
	if c.selected >= len(c.graphs) && c.selected > 0 {
		c.selected = len(c.graphs) - 1
	}
	c.recalc()
	c.Emit()

	return nil
}

// Clear detaches every member, cancelling all subscriptions.
func (c *Collection) Clear() {
	for _, s := range c.subs {
		s.Cancel()
	}
	c.graphs = c.graphs[:0]
	c.subs = c.subs[:0]
	c.selected = 0
	c.recalc()
	c.Emit()
}

// Graph returns the i-th member.
func (c *Collection) Graph(i int) (graphable.Graphable, error) {
	if i < 0 || i >= len(c.graphs) {
		return nil, ErrIndexOutOfRange
	}

	return c.graphs[i], nil
}

// GraphByName returns the member with the given name.
func (c *Collection) GraphByName(name string) (graphable.Graphable, error) {
	for _, g := range c.graphs {
		if g.Name() == name {
			return g, nil
		}
	}

	return nil, ErrNotFound
}

// Selected returns the index the single-value ValueAt dispatches to.
func (c *Collection) Selected() int { return c.selected }

// SetSelected picks the member ValueAt dispatches to.
func (c *Collection) SetSelected(i int) error {
	if i < 0 || i >= len(c.graphs) {
		return ErrIndexOutOfRange
	}
	c.selected = i

	return nil
}

// ValueAt dispatches the cursor query to the selected member; an empty
// collection reports 0, keeping the query total.
func (c *Collection) ValueAt(x, y, domainWidth, rangeHeight float64) float64 {
	if len(c.graphs) == 0 {
		return 0
	}

	return c.graphs[c.selected].ValueAt(x, y, domainWidth, rangeHeight)
}

// ValueText aggregates one readout line per visible member. Member
// names are included when the caller asked for them or when more than
// one member is visible, so multi-entity readouts stay attributable.
func (c *Collection) ValueText(x, y, domainWidth, rangeHeight float64, withName bool) string {
	visible := 0
	for _, g := range c.graphs {
		if g.Visible() {
			visible++
		}
	}
	named := withName || visible > 1

	lines := make([]string, 0, visible)
	for _, g := range c.graphs {
		if !g.Visible() {
			continue
		}
		lines = append(lines, g.ValueText(x, y, domainWidth, rangeHeight, named))
	}

	return strings.Join(lines, "\n")
}

// ValueTextAt returns the i-th member's readout regardless of visibility.
func (c *Collection) ValueTextAt(i int, x, y, domainWidth, rangeHeight float64, withName bool) (string, error) {
	if i < 0 || i >= len(c.graphs) {
		return "", ErrIndexOutOfRange
	}

	return c.graphs[i].ValueText(x, y, domainWidth, rangeHeight, withName), nil
}

// Recalculate forces a re-aggregation and reports whether the bounds
// moved. Mutation entry points call it automatically; it is exposed for
// callers that mutate member buffers through other references.
func (c *Collection) Recalculate() bool { return c.recalc() }

// childChanged is the listener registered on every member: re-aggregate
// and re-raise only when the aggregate actually moved.
func (c *Collection) childChanged() {
	if c.recalc() {
		c.Emit()
	}
}

// recalcBounds re-derives the aggregated extent over visible members.
// Auto-fit mode asks each member for its per-kind auto bounds; verbatim
// mode merges declared bounds scaled by the member's display factors.
func (c *Collection) recalcBounds() bool {
	b := graphable.UnsetBounds()
	for _, g := range c.graphs {
		if !g.Visible() {
			continue
		}
		if c.autoFit {
			if ab, ok := g.(graphable.AutoBounder); ok {
				fit, use := ab.AutoBounds()
				if !use {
					continue
				}
				b.Merge(fit)
				continue
			}
			b.Merge(g.Bounds())
			continue
		}
		b.Merge(scaledBounds(g))
	}

	next := b.OrZero()
	changed := !next.Equal(c.bounds)
	c.bounds = next

	return changed
}

// scaledBounds applies a member's display scale factors to its declared
// bounds; members without factors contribute bounds verbatim.
func scaledBounds(g graphable.Graphable) graphable.Bounds {
	b := g.Bounds()
	if sc, ok := g.(graphable.Scaler); ok {
		sx, sy := sc.XScale(), sc.YScale()
		b.XMin *= sx
		b.XMax *= sx
		b.YMin *= sy
		b.YMax *= sy
	}

	return b
}
