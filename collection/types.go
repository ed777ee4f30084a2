package collection

import "errors"

// Sentinel errors for collection membership operations.
var (
	// ErrNilGraphable indicates an attempt to add a nil entity.
	ErrNilGraphable = errors.New("collection: graphable must be non-nil")

	// ErrDuplicateName indicates an entity whose name is already taken.
	ErrDuplicateName = errors.New("collection: duplicate graphable name")

	// ErrNotFound indicates a name with no matching member.
	ErrNotFound = errors.New("collection: graphable not found")

	// ErrIndexOutOfRange indicates a member index outside the list.
	ErrIndexOutOfRange = errors.New("collection: index out of range")

	// ErrSelfReference indicates adding a collection to itself.
	ErrSelfReference = errors.New("collection: cannot add a collection to itself")
)

// Option configures a Collection at construction time.
type Option func(*Collection)

// WithoutAutoFit starts the collection in verbatim mode: members
// contribute their declared, scaled bounds instead of auto-fit bounds.
func WithoutAutoFit() Option {
	return func(c *Collection) { c.autoFit = false }
}

// WithHidden constructs the collection invisible to parent aggregation.
func WithHidden() Option {
	return func(c *Collection) { c.visible = false }
}
