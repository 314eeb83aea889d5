package stream

import (
	"github.com/kbukum/streamkit/optional"
)

// Reduce left-folds the values in source order with op and consumes the
// stream. An optional initial value seeds the fold; without one the first
// element does. Returns the empty Optional only for an empty source with
// no initial value; an empty source with an initial value yields
// Of(initial).
func (s *Stream[T]) Reduce(op func(T, T) T, initial ...T) optional.Optional[T] {
	iter := s.consume("Reduce")

	var acc T
	seeded := false
	if len(initial) > 0 {
		acc = initial[0]
		seeded = true
	}

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if !seeded {
			acc = v
			seeded = true
			continue
		}
		acc = op(acc, v)
	}

	if !seeded {
		return optional.Empty[T]()
	}
	return optional.Of(acc)
}

// GroupBy builds a mapping from each value's key to an ordered-with-
// duplicates container of the values sharing that key, and consumes the
// stream. Shorthand for GroupInto with the identity mapper and list
// containers.
func GroupBy[T any, K comparable](s *Stream[T], key func(T) K) map[K]Container[T] {
	return GroupInto(s, key, func(v T) T { return v }, NewListContainer[T])
}

// GroupInto builds a mapping from key to a container of mapped values and
// consumes the stream. For each value in source order the key and mapped
// value are computed; a previously-unseen key gets a fresh container from
// the factory, and the mapped value is added to its key's container.
func GroupInto[T any, K comparable, V any](
	s *Stream[T],
	key func(T) K,
	mapValue func(T) V,
	factory func() Container[V],
) map[K]Container[V] {
	iter := s.consume("GroupInto")

	out := make(map[K]Container[V])
	for {
		v, ok := iter.Next()
		if !ok {
			return out
		}
		k := key(v)
		container, seen := out[k]
		if !seen {
			container = factory()
			out[k] = container
		}
		container.Add(mapValue(v))
	}
}

// Mapping builds a key-to-value mapping and consumes the stream. For each
// value in source order the key and candidate value are computed; the first
// candidate for a key is stored as-is, and every later candidate replaces
// the stored value with resolve(stored, candidate). Each distinct key ends
// up with the left-fold of resolve over its candidates in source order.
func Mapping[T any, K comparable, V any](
	s *Stream[T],
	key func(T) K,
	value func(T) V,
	resolve func(stored, candidate V) V,
) map[K]V {
	iter := s.consume("Mapping")

	out := make(map[K]V)
	for {
		v, ok := iter.Next()
		if !ok {
			return out
		}
		k := key(v)
		candidate := value(v)
		if stored, seen := out[k]; seen {
			out[k] = resolve(stored, candidate)
		} else {
			out[k] = candidate
		}
	}
}
