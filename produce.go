package pushstreams

import "context"

// Produce returns an ended stream whose buffer holds the elements of the given slices, in order.
// The elements are copied, later changes to the slices do not affect the stream.
func Produce[T any](sched Scheduler, slices ...[]T) *Stream[T] {
	size := 0
	for _, slice := range slices {
		size += len(slice)
	}

	buf := make([]T, 0, size)
	for _, slice := range slices {
		buf = append(buf, slice...)
	}

	return newStream(sched, buf, func(_ func(T), end func()) {
		end()
	})
}

// Empty returns an ended stream without elements.
func Empty[T any](sched Scheduler) *Stream[T] {
	return New(sched, func(_ func(T), end func()) {
		end()
	})
}

// FromFuture returns a stream that produces the value fut resolves to, then ends.
// If fut never resolves, or is rejected, the stream never ends.
func FromFuture[T any](fut *Future[T]) *Stream[T] {
	return New(fut.Scheduler(), func(emit func(T), end func()) {
		fut.Then(func(val T) {
			emit(val)
			end()
		})
	})
}

// FromChannel returns a stream that produces the elements received through ch, in order.
// ch is consumed in a new goroutine, which hands each element over to sched.
// The stream ends when ch is closed or ctx is canceled.
func FromChannel[T any](ctx context.Context, sched Scheduler, ch <-chan T) *Stream[T] {
	return New(sched, func(emit func(T), end func()) {
		go func() {
			defer sched.Defer(end)

			for {
				select {
				case elem, ok := <-ch:
					if !ok {
						return
					}

					sched.Defer(func() {
						emit(elem)
					})

				case <-ctx.Done():
					return
				}
			}
		}()
	})
}
