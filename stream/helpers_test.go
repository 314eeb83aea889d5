package stream

import (
	"reflect"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

// expectPanicCode runs fn and fails the test unless fn panics with a
// *errors.Error carrying the given code.
func expectPanicCode(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with code %s", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if got := errors.CodeOf(err); got != code {
			t.Fatalf("expected code %s, got %s (%v)", code, got, err)
		}
	}()
	fn()
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nestedEqual[T any](a, b [][]T) bool {
	return reflect.DeepEqual(a, b)
}
