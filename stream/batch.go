package stream

import (
	"github.com/kbukum/streamkit/errors"
)

// Batch groups consecutive values into fixed-size slices in source order.
// The final group may hold fewer than size values when the source length is
// not a multiple of size; no value is ever dropped. size must be >= 1.
func (s *Stream[T]) Batch(size int) *Stream[[]T] {
	if size < 1 {
		panic(errors.InvalidInput("size", "batch size must be >= 1"))
	}
	return derive(s, "Batch", func(src Iterator[T]) Iterator[[]T] {
		return &batchIter[T]{source: src, size: size}
	})
}

type batchIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *batchIter[T]) Next() ([]T, bool) {
	if it.done {
		return nil, false
	}
	var batch []T
	for len(batch) < it.size {
		val, ok := it.source.Next()
		if !ok {
			it.done = true
			break
		}
		batch = append(batch, val)
	}
	if len(batch) == 0 {
		return nil, false
	}
	return batch, true
}
