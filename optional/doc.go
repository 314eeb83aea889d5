// Package optional provides a value-or-absence container.
//
// The zero value of Optional is the empty instance. Optional values are
// immutable after construction; equality is structural on the wrapped value,
// with empty only equal to empty.
package optional
