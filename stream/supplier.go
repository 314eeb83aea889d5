package stream

// Supplier wraps a zero-argument producer function as an unbounded
// sequence source. Each pull invokes the producer exactly once; the
// sequence never ends on its own, so callers must bound it (for example
// with Stream.Limit) before fully draining it.
type Supplier[T any] struct {
	fn func() T
}

// NewSupplier wraps the given producer function.
func NewSupplier[T any](fn func() T) *Supplier[T] {
	return &Supplier[T]{fn: fn}
}

// Next invokes the producer once and returns its result.
func (s *Supplier[T]) Next() T {
	return s.fn()
}

// Iterate returns an infinite Iterator over the producer's results.
// The sequence is restartable only by constructing a new Supplier.
func (s *Supplier[T]) Iterate() Iterator[T] {
	return &supplierIter[T]{fn: s.fn}
}

type supplierIter[T any] struct {
	fn func() T
}

func (it *supplierIter[T]) Next() (T, bool) {
	return it.fn(), true
}
