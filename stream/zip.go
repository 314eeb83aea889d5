package stream

import (
	"github.com/kbukum/streamkit/errors"
)

// Zip combines the stream's values positionally with the corresponding
// values of each other sequence, stopping at the shortest sequence.
// Each output slice holds the stream's own value plus one value per other
// sequence: with after true the own value comes first, followed by the
// others in argument order; with after false the others come first and the
// own value last.
func (s *Stream[T]) Zip(after bool, others ...[]T) *Stream[[]T] {
	return derive(s, "Zip", func(src Iterator[T]) Iterator[[]T] {
		return &zipIter[T]{source: src, others: others, after: after}
	})
}

// ZipLongest is like Zip but continues until the longest sequence is
// exhausted; sequences that have run out contribute fill for their
// remaining positions.
func (s *Stream[T]) ZipLongest(fill T, after bool, others ...[]T) *Stream[[]T] {
	return derive(s, "ZipLongest", func(src Iterator[T]) Iterator[[]T] {
		return &zipLongestIter[T]{source: src, others: others, after: after, fill: fill}
	})
}

// Cycle combines each of the stream's values with values of other, cycling
// other from its start whenever it is exhausted. The stream's own length
// governs termination. other must not be empty. Field order follows after
// exactly as in Zip.
func (s *Stream[T]) Cycle(other []T, after bool) *Stream[[]T] {
	if len(other) == 0 {
		panic(errors.InvalidInput("other", "cycle sequence must not be empty"))
	}
	return derive(s, "Cycle", func(src Iterator[T]) Iterator[[]T] {
		return &cycleIter[T]{source: src, other: other, after: after}
	})
}

// tuple assembles an output slice respecting the after flag.
func tuple[T any](own T, others []T, after bool) []T {
	out := make([]T, 0, len(others)+1)
	if after {
		out = append(out, own)
		return append(out, others...)
	}
	out = append(out, others...)
	return append(out, own)
}

type zipIter[T any] struct {
	source Iterator[T]
	others [][]T
	after  bool
	pos    int
}

func (it *zipIter[T]) Next() ([]T, bool) {
	own, ok := it.source.Next()
	if !ok {
		return nil, false
	}
	rest := make([]T, 0, len(it.others))
	for _, seq := range it.others {
		if it.pos >= len(seq) {
			return nil, false
		}
		rest = append(rest, seq[it.pos])
	}
	it.pos++
	return tuple(own, rest, it.after), true
}

type zipLongestIter[T any] struct {
	source  Iterator[T]
	others  [][]T
	after   bool
	fill    T
	pos     int
	srcDone bool
}

func (it *zipLongestIter[T]) Next() ([]T, bool) {
	own := it.fill
	ownPresent := false
	if !it.srcDone {
		if v, ok := it.source.Next(); ok {
			own = v
			ownPresent = true
		} else {
			it.srcDone = true
		}
	}
	rest := make([]T, 0, len(it.others))
	anyPresent := ownPresent
	for _, seq := range it.others {
		if it.pos < len(seq) {
			rest = append(rest, seq[it.pos])
			anyPresent = true
		} else {
			rest = append(rest, it.fill)
		}
	}
	if !anyPresent {
		return nil, false
	}
	it.pos++
	return tuple(own, rest, it.after), true
}

type cycleIter[T any] struct {
	source Iterator[T]
	other  []T
	after  bool
	index  int
}

func (it *cycleIter[T]) Next() ([]T, bool) {
	own, ok := it.source.Next()
	if !ok {
		return nil, false
	}
	companion := it.other[it.index%len(it.other)]
	it.index++
	return tuple(own, []T{companion}, it.after), true
}
