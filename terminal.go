package pushstreams

import "errors"

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(elem T, acc A) A

// ErrNoElements is the error a Future returned by First is rejected with if its stream ends without elements.
var ErrNoElements = errors.New("no elements")

// Each attaches to s, and calls each for each element produced by s.
// The returned Future resolves when s ends.
func Each[T any](s *Stream[T], each ConsumerFunc[T]) *Future[struct{}] {
	fut, resolve, _ := NewFuture[struct{}](s.sched)

	s.Attach(SinkFuncs[T]{
		OnElement: each,
		OnEnd: func() {
			resolve(struct{}{})
		},
	})

	return fut
}

// Reduce attaches to s, and calls reduce for each element produced by s, folding it into accumulator acc.
// The returned Future resolves to the final accumulator when s ends.
func Reduce[T any, A any](s *Stream[T], acc A, reduce AccumulatorFunc[T, A]) *Future[A] {
	fut, resolve, _ := NewFuture[A](s.sched)

	s.Attach(SinkFuncs[T]{
		OnElement: func(elem T) {
			acc = reduce(elem, acc)
		},
		OnEnd: func() {
			resolve(acc)
		},
	})

	return fut
}

// Collect returns a Future that resolves to the elements produced by s, in order, when s ends.
func Collect[T any](s *Stream[T]) *Future[[]T] {
	return Reduce[T, []T](s, nil, CollectSlice[T]())
}

// Count returns a Future that resolves to the number of elements produced by s when s ends.
func Count[T any](s *Stream[T]) *Future[uint64] {
	return Reduce(s, uint64(0), func(_ T, acc uint64) uint64 {
		return acc + 1
	})
}

// First returns a Future that resolves to the first element produced by s.
// If s ends without producing any elements, the Future is rejected with ErrNoElements.
func First[T any](s *Stream[T]) *Future[T] {
	fut, resolve, reject := NewFuture[T](s.sched)

	found := false

	s.Attach(SinkFuncs[T]{
		OnElement: func(elem T) {
			if found {
				return
			}

			found = true

			resolve(elem)
		},
		OnEnd: func() {
			if !found {
				reject(ErrNoElements)
			}
		},
	})

	return fut
}

// AnyMatch returns a Future that resolves to true as soon as pred returns true for an element produced by s,
// or to false when s ends without a match.
// The stream is not canceled on a match, later elements are ignored.
func AnyMatch[T any](s *Stream[T], pred Predicate[T]) *Future[bool] {
	return matchFuture(s, pred, true)
}

// AllMatch returns a Future that resolves to false as soon as pred returns false for an element produced by s,
// or to true when s ends with all elements matching.
// The stream is not canceled on a mismatch, later elements are ignored.
func AllMatch[T any](s *Stream[T], pred Predicate[T]) *Future[bool] {
	return matchFuture(s, pred, false)
}

// matchFuture resolves to decisive as soon as pred returns decisive for an element, or to !decisive when s ends.
func matchFuture[T any](s *Stream[T], pred Predicate[T], decisive bool) *Future[bool] {
	fut, resolve, _ := NewFuture[bool](s.sched)

	decided := false

	s.Attach(SinkFuncs[T]{
		OnElement: func(elem T) {
			if decided || pred(elem) != decisive {
				return
			}

			decided = true

			resolve(decisive)
		},
		OnEnd: func() {
			if !decided {
				resolve(!decisive)
			}
		},
	})

	return fut
}
