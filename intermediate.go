package pushstreams

import "golang.org/x/exp/slices"

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// Predicate returns true if elem matches a predicate.
type Predicate[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// Map returns a stream that produces the result of calling mapp for each element produced by s, and ends when s ends.
func Map[T any, U any](s *Stream[T], mapp Function[T, U]) *Stream[U] {
	return New(s.sched, func(emit func(U), end func()) {
		s.Attach(SinkFuncs[T]{
			OnElement: func(elem T) {
				emit(mapp(elem))
			},
			OnEnd: end,
		})
	})
}

// Filter returns a stream that calls filter for each element produced by s, and only produces elements for which
// filter returns true. It ends when s ends.
func Filter[T any](s *Stream[T], filter Predicate[T]) *Stream[T] {
	return New(s.sched, func(emit func(T), end func()) {
		s.Attach(SinkFuncs[T]{
			OnElement: func(elem T) {
				if filter(elem) {
					emit(elem)
				}
			},
			OnEnd: end,
		})
	})
}

// InterleaveMap returns a stream that calls mapp for each element produced by s, mapping it to an intermediate stream,
// and produces all elements produced by the intermediate streams, in the order they arrive.
// The new stream ends once s and all intermediate streams have ended.
func InterleaveMap[T any, U any](s *Stream[T], mapp Function[T, *Stream[U]]) *Stream[U] {
	return New(s.sched, func(emit func(U), end func()) {
		var tracker openTracker

		s.Attach(SinkFuncs[T]{
			OnElement: func(elem T) {
				tracker.open++

				mapp(elem).Attach(SinkFuncs[U]{
					OnElement: emit,
					OnEnd: func() {
						tracker.open--
						tracker.maybeEnd(end)
					},
				})
			},
			OnEnd: func() {
				tracker.sourceEnded = true
				tracker.maybeEnd(end)
			},
		})
	})
}

// InterleaveFutures returns a stream that produces the values the Futures produced by s resolve to,
// in the order they resolve. The new stream ends once s has ended and all Futures have resolved.
// A rejected Future is never counted as done, so the new stream does not end.
func InterleaveFutures[T any](s *Stream[*Future[T]]) *Stream[T] {
	return New(s.sched, func(emit func(T), end func()) {
		var tracker openTracker

		s.Attach(SinkFuncs[*Future[T]]{
			OnElement: func(fut *Future[T]) {
				tracker.open++

				fut.Then(func(val T) {
					emit(val)

					tracker.open--
					tracker.maybeEnd(end)
				})
			},
			OnEnd: func() {
				tracker.sourceEnded = true
				tracker.maybeEnd(end)
			},
		})
	})
}

// Merge returns a stream that produces the elements produced by the given streams, in the order they arrive.
// The new stream ends once all streams have ended.
func Merge[T any](sched Scheduler, streams ...*Stream[T]) *Stream[T] {
	return InterleaveMap(Produce(sched, streams), Identity[*Stream[T]]())
}

// Peek returns a stream that calls peek for each element produced by s, in order, and produces the same elements.
func Peek[T any](s *Stream[T], peek ConsumerFunc[T]) *Stream[T] {
	return Map(s, func(elem T) T {
		peek(elem)
		return elem
	})
}

// Limit returns a stream that produces the same elements as s, in order, up to max elements.
// It ends after max elements, or when s ends.
func Limit[T any](s *Stream[T], max uint64) *Stream[T] {
	return New(s.sched, func(emit func(T), end func()) {
		if max == 0 {
			end()
			return
		}

		done := uint64(0)

		s.Attach(SinkFuncs[T]{
			OnElement: func(elem T) {
				if done == max {
					return
				}

				emit(elem)

				done++
				if done == max {
					end()
				}
			},
			OnEnd: end,
		})
	})
}

// Skip returns a stream that produces the same elements as s, in order, skipping the first num elements.
func Skip[T any](s *Stream[T], num uint64) *Stream[T] {
	done := uint64(0)

	return Filter(s, func(_ T) bool {
		done++
		return done > num
	})
}

// Sort returns a stream that collects the elements produced by s, and once s ends, produces them in sorted order.
// The sort is stable.
func Sort[T any](s *Stream[T], less LessFunc[T]) *Stream[T] {
	return New(s.sched, func(emit func(T), end func()) {
		result := []T{}

		s.Attach(SinkFuncs[T]{
			OnElement: func(elem T) {
				result = append(result, elem)
			},
			OnEnd: func() {
				slices.SortStableFunc(result, less)

				for _, elem := range result {
					emit(elem)
				}

				end()
			},
		})
	})
}

// Identity returns a function that returns the same element it receives.
func Identity[T any]() Function[T, T] {
	return func(elem T) T {
		return elem
	}
}

// openTracker decides when a stream merging a growing number of inputs ends.
type openTracker struct {
	open        int
	sourceEnded bool
}

// maybeEnd calls end if the source has ended and no inputs are open.
func (t *openTracker) maybeEnd(end func()) {
	if t.sourceEnded && t.open == 0 {
		end()
	}
}
