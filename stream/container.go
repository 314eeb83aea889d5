package stream

// Container is an accumulation target for grouping operations.
// A concrete container only has to know how to add one element while
// respecting its own semantics; GroupInto creates one container per
// previously-unseen key via a caller-supplied factory.
type Container[T any] interface {
	// Add inserts one element, respecting container semantics.
	Add(v T)
	// Values returns the accumulated elements.
	Values() []T
}

// ListContainer accumulates elements in add order and keeps duplicates.
// It is the default grouping container.
type ListContainer[T any] struct {
	items []T
}

// NewListContainer creates an empty ordered-with-duplicates container.
func NewListContainer[T any]() Container[T] {
	return &ListContainer[T]{}
}

// Add appends v to the end.
func (c *ListContainer[T]) Add(v T) {
	c.items = append(c.items, v)
}

// Values returns the elements in add order.
func (c *ListContainer[T]) Values() []T {
	return c.items
}

// SetContainer accumulates unique elements; duplicate adds are no-ops and
// iteration order is unspecified.
type SetContainer[T comparable] struct {
	seen map[T]struct{}
}

// NewSetContainer creates an empty unique-unordered container.
func NewSetContainer[T comparable]() Container[T] {
	return &SetContainer[T]{seen: make(map[T]struct{})}
}

// Add inserts v unless it is already present.
func (c *SetContainer[T]) Add(v T) {
	c.seen[v] = struct{}{}
}

// Values returns the unique elements in unspecified order.
func (c *SetContainer[T]) Values() []T {
	out := make([]T, 0, len(c.seen))
	for v := range c.seen {
		out = append(out, v)
	}
	return out
}
