package stream_test

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kbukum/streamkit/stream"
)

func ExampleStream() {
	s := stream.FromSlice([]int{1, 2, 3, 4, 5})
	batches := s.Filter(func(n int) bool { return n > 1 }).Batch(2).AsSeq()
	fmt.Println(batches)
	// Output: [[2 3] [4 5]]
}

func ExampleFromSupplier() {
	n := 0
	counter := stream.NewSupplier(func() int {
		n++
		return n
	})

	// A supplier-backed stream is unbounded: Limit must bound it
	// before the terminal operation.
	evens := stream.FromSupplier(counter).
		Filter(func(v int) bool { return v%2 == 0 }).
		Limit(3).
		AsSeq()
	fmt.Println(evens)
	// Output: [2 4 6]
}

func ExampleNewSupplier() {
	ids := stream.NewSupplier(uuid.NewString)
	unique := stream.FromSupplier(ids).Limit(64).AsSeq()
	fmt.Println(len(unique))
	// Output: 64
}

func ExampleChainedCondition() {
	grades := stream.NewChainedCondition[int]("grades").
		IfThen(func(n int) bool { return n >= 90 }, func(int) int { return 1 }).
		IfThen(func(n int) bool { return n >= 60 }, func(int) int { return 2 }).
		Otherwise(func(int) int { return 3 })

	out := stream.FromSlice([]int{95, 72, 40}).Conditional(grades).AsSeq()
	fmt.Println(out)
	// Output: [1 2 3]
}

func ExampleMapping() {
	words := stream.FromSlice([]string{"go", "stream", "go", "lazy"})
	counts := stream.Mapping(words,
		func(w string) string { return w },
		func(string) int { return 1 },
		func(stored, candidate int) int { return stored + candidate })
	fmt.Println(counts["go"], counts["lazy"])
	// Output: 2 1
}
