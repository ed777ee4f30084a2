package graphable

// Subscription is the handle returned by OnChange. The parent that
// registered the listener owns the handle and cancels it on removal;
// the child retains no back-reference to the parent.
type Subscription struct {
	cancel func()
}

// Cancel deregisters the listener. Cancelling twice is a no-op.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Notifier is the synchronous change fan-out embedded by every entity
// and collection. Emit is called by mutation entry points after derived
// state has been refreshed, so listeners always observe a consistent
// entity. Single-threaded; no locking.
type Notifier struct {
	seq  int
	subs map[int]func()
}

// OnChange registers fn to run on every subsequent mutation.
func (n *Notifier) OnChange(fn func()) Subscription {
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	n.seq++
	id := n.seq
	n.subs[id] = fn

	return Subscription{cancel: func() { delete(n.subs, id) }}
}

// Emit synchronously invokes every registered listener.
func (n *Notifier) Emit() {
	for _, fn := range n.subs {
		fn()
	}
}
