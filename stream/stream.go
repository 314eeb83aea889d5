package stream

import (
	"github.com/kbukum/streamkit/errors"
)

// Iterator provides pull-based sequential access to a sequence of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
}

// Stream represents a lazy, single-consumption pipeline over a sequence.
// No work happens until a terminal operation pulls values through the
// composed stages; after the first terminal operation the stream is
// consumed and every further operation panics.
type Stream[T any] struct {
	create   func() Iterator[T]
	consumed bool
}

// --- Constructors ---

// From creates a stream from an existing Iterator.
func From[T any](iter Iterator[T]) *Stream[T] {
	return &Stream[T]{
		create: func() Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a stream from a slice of values.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		create: func() Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromSupplier creates a stream over the unbounded sequence produced by s.
// The stream must be bounded with Limit before any terminal operation,
// otherwise the terminal operation never finishes.
func FromSupplier[T any](s *Supplier[T]) *Stream[T] {
	return &Stream[T]{
		create: func() Iterator[T] {
			return s.Iterate()
		},
	}
}

// --- State machine ---

// ensureOpen panics when the stream was already drained by a terminal operation.
func (s *Stream[T]) ensureOpen(operation string) {
	if s.consumed {
		panic(errors.PipelineConsumed(operation))
	}
}

// consume marks the stream consumed and returns the composed iterator.
func (s *Stream[T]) consume(operation string) Iterator[T] {
	s.ensureOpen(operation)
	s.consumed = true
	return s.create()
}

// Consumed reports whether a terminal operation already drained the stream.
func (s *Stream[T]) Consumed() bool { return s.consumed }

// derive composes a new open stream on top of s without evaluating anything.
func derive[T, U any](s *Stream[T], operation string, wrap func(Iterator[T]) Iterator[U]) *Stream[U] {
	s.ensureOpen(operation)
	create := s.create
	return &Stream[U]{
		create: func() Iterator[U] {
			return wrap(create())
		},
	}
}

// --- Terminals ---

// AsSeq materializes the fully-evaluated sequence in source order
// and consumes the stream.
func (s *Stream[T]) AsSeq() []T {
	iter := s.consume("AsSeq")
	var out []T
	for {
		v, ok := iter.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach pulls every value in source order, calls fn for each,
// and consumes the stream.
func (s *Stream[T]) ForEach(fn func(T)) {
	iter := s.consume("ForEach")
	for {
		v, ok := iter.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}
