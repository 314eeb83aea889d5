package utility

// DivideInChunk divides items into fixed-size chunks. The last chunk may
// hold fewer than size elements. Chunks share backing memory with items.
func DivideInChunk[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[i:end])
	}
	return out
}

// FilterTransform filters items with the predicate and transforms the
// selected elements, eagerly. The lazy counterpart is
// stream.Map(s.Filter(pred), fn).
func FilterTransform[T, U any](items []T, pred func(T) bool, fn func(T) U) []U {
	var out []U
	for _, v := range items {
		if pred(v) {
			out = append(out, fn(v))
		}
	}
	return out
}
