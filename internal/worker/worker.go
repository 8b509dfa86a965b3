// Package worker moves blocking calls off the calling goroutine and hands the
// result back through a future.
package worker

import (
	"context"
	"fmt"
)

type result[T any] struct {
	val T
	err error
}

// Future is the pending result of a call started with Go.
type Future[T any] struct {
	done chan result[T]
}

// Go starts fn on its own goroutine. There is no pool limit: every call gets
// a goroutine. A panic in fn is recovered and reported as an error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan result[T], 1)}
	go func() {
		var res result[T]
		defer func() {
			if p := recover(); p != nil {
				res = result[T]{err: fmt.Errorf("worker: panic: %v", p)}
			}
			f.done <- res
		}()
		res.val, res.err = fn(ctx)
	}()
	return f
}

// Await blocks until the call finishes or ctx is done. The result channel is
// buffered, so an abandoned call never leaks its goroutine on send.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case res := <-f.done:
		return res.val, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Run is Go followed by Await.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return Go(ctx, fn).Await(ctx)
}
