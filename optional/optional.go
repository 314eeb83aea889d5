package optional

import (
	"fmt"
	"reflect"

	"github.com/kbukum/streamkit/errors"
)

// Optional holds either exactly one value of type T or nothing.
type Optional[T any] struct {
	value   T
	present bool
}

// Of creates an Optional holding the given value.
func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Empty returns the empty Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value.
// Returns an Error with code ErrCodeEmptyValue when the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, errors.EmptyValueAccess()
	}
	return o.value, nil
}

// MustGet returns the wrapped value and panics when the Optional is empty.
func (o Optional[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// IsEmpty reports whether the Optional holds no value.
func (o Optional[T]) IsEmpty() bool { return !o.present }

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool { return o.present }

// OrElse returns the wrapped value if present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Equal reports whether both Optionals are empty, or both hold
// structurally equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// String returns a human-readable representation.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// Map applies fn to the value if present, propagating emptiness.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if o.IsEmpty() {
		return Empty[U]()
	}
	return Of(fn(o.value))
}
