// Package draw generates uniformly random values of a fixed element type.
package draw

// Source is anything that yields uniformly random values of type T.
// Sources backed by their own generator are not safe for concurrent use;
// confine each one to a single goroutine.
type Source[T any] interface {
	Draw() T
}

// MaxBatch is the most values a single Batch call will produce.
const MaxBatch = 32

// Batch draws min(n, MaxBatch) values from src. Requesting more than
// MaxBatch silently truncates rather than erroring, so callers must not
// assume the result has exactly n elements.
func Batch[T any](src Source[T], n int) []T {
	if n > MaxBatch {
		n = MaxBatch
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for range n {
		out = append(out, src.Draw())
	}
	return out
}
