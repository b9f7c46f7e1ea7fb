package procstream

// Processor drains a byte stream and produces a typed result.
//
// Like Consumer, a Processor keeps the producing process from blocking on a
// full pipe buffer, but it aggregates what it reads instead of discarding it.
type Processor[T any] interface {
	// Process returns the result of draining the underlying stream. The
	// first successful call drains the stream, builds the result, and
	// caches it; every subsequent call returns the cached value without
	// reading. If the drain fails, nothing is cached and the error is
	// returned.
	Process() (T, error)
}

// ProcessAsync schedules p.Process on a new goroutine and returns a Task for
// its result. ProcessAsync itself never blocks. Awaiting the Task yields
// exactly what a direct Process call would: the same memoized value, or the
// same failure. Tasks obtained after the first successful drain all observe
// the identical cached value.
func ProcessAsync[T any](p Processor[T]) *Task[T] {
	return newTask(p.Process)
}
