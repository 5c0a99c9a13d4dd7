package async

import (
	"context"
	"fmt"
)

// Future is the result of a computation running in its own goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Go starts fn(ctx, param) in a new goroutine. A context that is already done
// completes the future with ErrNotStarted without calling fn.
func Go[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = fmt.Errorf("%w: %w", ErrNotStarted, err)
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done is closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
