package stream

import (
	"github.com/kbukum/streamkit/errors"
)

// Indexed pairs a value with its zero-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Filter keeps only values that satisfy the predicate.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	return derive(s, "Filter", func(src Iterator[T]) Iterator[T] {
		return &filterIter[T]{source: src, pred: pred}
	})
}

// Map transforms each value using fn.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return derive(s, "Map", func(src Iterator[T]) Iterator[U] {
		return &mapIter[T, U]{source: src, fn: fn}
	})
}

// Limit bounds the stream to its first n values. Required before any
// terminal operation on a supplier-backed stream.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	if n < 0 {
		panic(errors.InvalidInput("n", "limit must be >= 0"))
	}
	return derive(s, "Limit", func(src Iterator[T]) Iterator[T] {
		return &limitIter[T]{source: src, remaining: n}
	})
}

// Enumerate pairs each value with a zero-based sequential index
// in source order.
func (s *Stream[T]) Enumerate() *Stream[Indexed[T]] {
	return derive(s, "Enumerate", func(src Iterator[T]) Iterator[Indexed[T]] {
		return &enumerateIter[T]{source: src}
	})
}

// IfElse maps each value with ifFn when the predicate holds and with
// elseFn otherwise.
func (s *Stream[T]) IfElse(pred func(T) bool, ifFn, elseFn func(T) T) *Stream[T] {
	return s.Conditional(IfElse(pred, ifFn, elseFn))
}

// Conditional applies a closed ChainedCondition to every value in source
// order. Panics with code PIPELINE_NOT_CLOSED when cc is still open.
func (s *Stream[T]) Conditional(cc *ChainedCondition[T]) *Stream[T] {
	if !cc.Closed() {
		panic(errors.PipelineNotClosed(cc.name))
	}
	return derive(s, "Conditional", func(src Iterator[T]) Iterator[T] {
		return &mapIter[T, T]{source: src, fn: cc.Apply}
	})
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
}

func (it *filterIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if it.pred(val) {
			return val, true
		}
	}
}

type mapIter[T, U any] struct {
	source Iterator[T]
	fn     func(T) U
}

func (it *mapIter[T, U]) Next() (U, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return it.fn(val), true
}

type limitIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *limitIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	return it.source.Next()
}

type enumerateIter[T any] struct {
	source Iterator[T]
	index  int
}

func (it *enumerateIter[T]) Next() (Indexed[T], bool) {
	val, ok := it.source.Next()
	if !ok {
		return Indexed[T]{}, false
	}
	out := Indexed[T]{Index: it.index, Value: val}
	it.index++
	return out, true
}
