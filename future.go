package pushstreams

import (
	"context"
	"errors"
)

// Future is a value that becomes available on a later turn of a Scheduler, or fails to.
// A Future settles at most once: the first call to its resolve or reject function wins.
// Callbacks always run on the Future's Scheduler.
type Future[T any] struct {
	sched Scheduler
	state futureState

	val T
	err error

	onResolve []func(val T)
	onReject  []func(err error)
}

type futureState uint8

const (
	futurePending futureState = iota
	futureResolved
	futureRejected
)

// errSettled is the cancelation cause used by Await once its Future has settled.
var errSettled = errors.New("future settled")

// NewFuture returns a pending Future, together with the functions that resolve or reject it.
// resolve and reject may be called from any goroutine. The Future settles on a later turn of sched.
func NewFuture[T any](sched Scheduler) (*Future[T], func(val T), func(err error)) {
	fut := &Future[T]{
		sched: sched,
	}

	resolve := func(val T) {
		sched.Defer(func() {
			fut.settle(futureResolved, val, nil)
		})
	}

	reject := func(err error) {
		sched.Defer(func() {
			var zero T
			fut.settle(futureRejected, zero, err)
		})
	}

	return fut, resolve, reject
}

// Resolved returns a Future that resolves to val.
func Resolved[T any](sched Scheduler, val T) *Future[T] {
	fut, resolve, _ := NewFuture[T](sched)
	resolve(val)

	return fut
}

// Rejected returns a Future that is rejected with err.
func Rejected[T any](sched Scheduler, err error) *Future[T] {
	fut, _, reject := NewFuture[T](sched)
	reject(err)

	return fut
}

// Go returns a Future that settles with the result of calling fn in a new goroutine.
// The Future is rejected if fn returns a non-nil error.
func Go[T any](ctx context.Context, sched Scheduler, fn func(ctx context.Context) (T, error)) *Future[T] {
	fut, resolve, reject := NewFuture[T](sched)

	go func() {
		val, err := fn(ctx)
		if err != nil {
			reject(err)
			return
		}

		resolve(val)
	}()

	return fut
}

// Await runs loop until fut settles, and returns the value or error fut settled with.
// If ctx is canceled first, it returns the cause of the cancelation.
// Await must not be called from one of loop's tasks.
func Await[T any](ctx context.Context, loop *Loop, fut *Future[T]) (T, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		val T
		err error
	)

	fut.Then(func(v T) {
		val = v
		cancel(errSettled)
	})

	fut.Catch(func(e error) {
		err = e
		cancel(errSettled)
	})

	if runErr := loop.Run(ctx); !errors.Is(runErr, errSettled) {
		var zero T
		return zero, runErr
	}

	return val, err
}

// Then registers onResolve to be called with the value of fut once it resolves.
// If fut has already resolved, onResolve is called on a later turn.
func (fut *Future[T]) Then(onResolve func(val T)) {
	switch fut.state {
	case futurePending:
		fut.onResolve = append(fut.onResolve, onResolve)

	case futureResolved:
		val := fut.val
		fut.sched.Defer(func() {
			onResolve(val)
		})
	}
}

// Catch registers onReject to be called with the error of fut once it is rejected.
// If fut has already been rejected, onReject is called on a later turn.
func (fut *Future[T]) Catch(onReject func(err error)) {
	switch fut.state {
	case futurePending:
		fut.onReject = append(fut.onReject, onReject)

	case futureRejected:
		err := fut.err
		fut.sched.Defer(func() {
			onReject(err)
		})
	}
}

// Scheduler returns the Scheduler fut settles on.
func (fut *Future[T]) Scheduler() Scheduler {
	return fut.sched
}

func (fut *Future[T]) settle(state futureState, val T, err error) {
	if fut.state != futurePending {
		return
	}

	fut.state = state
	fut.val = val
	fut.err = err

	onResolve, onReject := fut.onResolve, fut.onReject
	fut.onResolve, fut.onReject = nil, nil

	if state == futureResolved {
		for _, f := range onResolve {
			f(val)
		}

		return
	}

	for _, f := range onReject {
		f(err)
	}
}
