package stream

import (
	"fmt"

	"github.com/kbukum/streamkit/errors"
)

// branch is one (predicate, transform) pair of a ChainedCondition.
type branch[T any] struct {
	when func(T) bool
	then func(T) T
}

// ChainedCondition accumulates ordered (predicate, transform) branches and
// dispatches values through them, first match wins.
//
// A chain starts open: branches are appended with IfThen and the chain is
// closed exactly once, either by Otherwise (appending an always-matching
// fallback) or by Done (pass-through for unmatched values). Only a closed
// chain may be applied. Unlike a Stream, a closed chain is immutable and
// reusable across any number of Apply calls.
type ChainedCondition[T any] struct {
	name        string
	branches    []branch[T]
	closed      bool
	hasFallback bool
}

// NewChainedCondition creates an open chain with zero branches.
// An optional name is used in error details and String.
func NewChainedCondition[T any](name ...string) *ChainedCondition[T] {
	c := &ChainedCondition[T]{}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// IfElse creates a closed two-branch chain: values matching pred are
// transformed with ifFn, all others with elseFn.
func IfElse[T any](pred func(T) bool, ifFn, elseFn func(T) T) *ChainedCondition[T] {
	return NewChainedCondition[T]().IfThen(pred, ifFn).Otherwise(elseFn)
}

// IfThen appends a branch and returns the receiver for chaining.
// Panics with code PIPELINE_ALREADY_CLOSED when the chain is closed.
func (c *ChainedCondition[T]) IfThen(pred func(T) bool, fn func(T) T) *ChainedCondition[T] {
	if c.closed {
		panic(errors.PipelineAlreadyClosed(c.name))
	}
	c.branches = append(c.branches, branch[T]{when: pred, then: fn})
	return c
}

// Otherwise appends an always-matching fallback branch and closes the chain.
// Panics with code NO_CONDITION_DEFINED when no branch was added first, and
// with code PIPELINE_ALREADY_CLOSED when the chain is closed.
func (c *ChainedCondition[T]) Otherwise(fn func(T) T) *ChainedCondition[T] {
	if c.closed {
		panic(errors.PipelineAlreadyClosed(c.name))
	}
	if len(c.branches) == 0 {
		panic(errors.NoConditionDefined())
	}
	c.branches = append(c.branches, branch[T]{
		when: func(T) bool { return true },
		then: fn,
	})
	c.closed = true
	c.hasFallback = true
	return c
}

// Done closes the chain without adding a fallback: values matching no
// branch pass through Apply unchanged. A chain with zero branches is legal.
// Panics with code PIPELINE_ALREADY_CLOSED when the chain is closed.
func (c *ChainedCondition[T]) Done() *ChainedCondition[T] {
	if c.closed {
		panic(errors.PipelineAlreadyClosed(c.name))
	}
	c.closed = true
	return c
}

// Apply dispatches e through the branches in insertion order and returns
// the transform of the first branch whose predicate holds; predicates after
// the first match are not evaluated. When no branch matches, e is returned
// unchanged. Panics with code PIPELINE_NOT_CLOSED when the chain is open.
func (c *ChainedCondition[T]) Apply(e T) T {
	if !c.closed {
		panic(errors.PipelineNotClosed(c.name))
	}
	for _, b := range c.branches {
		if b.when(e) {
			return b.then(e)
		}
	}
	return e
}

// Closed reports whether the chain was closed by Otherwise or Done.
func (c *ChainedCondition[T]) Closed() bool { return c.closed }

// Describe returns a human-readable summary of the branches.
func (c *ChainedCondition[T]) Describe() string {
	size := len(c.branches)

	switch {
	case size == 0:
		return "ChainedCondition has not defined any condition"
	case size == 1:
		return "ChainedCondition defines 'if' condition"
	case c.hasFallback && size == 2:
		return "ChainedCondition defines 'if' and 'else' condition"
	case c.hasFallback:
		return fmt.Sprintf("ChainedCondition defines 'if' then %d elif condition%s and 'else' condition",
			size-2, plural(size-2))
	default:
		return fmt.Sprintf("ChainedCondition defines 'if' then %d elif condition%s",
			size-1, plural(size-1))
	}
}

// String returns the chain's name, or Describe when it has none.
func (c *ChainedCondition[T]) String() string {
	if c.name != "" {
		return c.name
	}
	return c.Describe()
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
