// Package stream provides a composable, lazily-evaluated sequence pipeline.
//
// A Stream wraps a source of elements and is built up from intermediate
// operations (Filter, Map, Limit, Batch, Enumerate, Zip, Cycle, IfElse,
// Conditional) that compose new lazy stages without evaluating anything.
// A terminal operation (Reduce, GroupBy, Mapping, AsSeq, ForEach) pulls the
// composed sequence exactly once, in source order, and permanently consumes
// the stream.
//
// Evaluation is single-threaded and pull-based: each stage pulls from the
// previous stage on demand. There is no implicit parallelism and no
// cancellation; the only way to bound an infinite Supplier-backed stream is
// an explicit Limit stage before the terminal operation.
//
// Misuse of the pipeline state machine — reusing a consumed stream, applying
// an open ChainedCondition, appending to a closed one — is a programmer
// error and panics with a typed *errors.Error carrying a machine-readable
// code. Terminal operations therefore return plain results.
//
// # Usage
//
//	s := stream.FromSlice([]int{1, 2, 3, 4, 5})
//	batches := s.Filter(func(n int) bool { return n > 1 }).Batch(2).AsSeq()
//	// [[2 3] [4 5]]
//
// With an unbounded supplier:
//
//	ids := stream.NewSupplier(uuid.NewString)
//	first10 := stream.FromSupplier(ids).Limit(10).AsSeq()
package stream
