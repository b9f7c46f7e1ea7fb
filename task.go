package procstream

import "context"

// Task is a handle for a result that may not be available yet.
//
// The zero value is not usable; Tasks are produced by ProcessAsync.
type Task[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// newTask runs fn on a new goroutine. value and err are written before done
// is closed, so any goroutine that observes the close also observes the
// outcome.
func newTask[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.value, t.err = fn()
	}()
	return t
}

// Done returns a channel that is closed when the computation finishes. It is
// safe to select on from any number of goroutines.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the computation finishes or ctx is done, whichever comes
// first. When ctx wins, Wait returns the zero value and ctx.Err(); the
// underlying drain keeps running until its stream ends or fails, and a later
// Wait call can still collect the outcome.
//
// Wait may be called any number of times, from any number of goroutines;
// every call that outlives the computation returns the same outcome.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
