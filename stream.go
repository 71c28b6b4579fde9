package pushstreams

// Emitter produces the elements of a stream.
// It is called exactly once, synchronously, while the stream is being constructed.
// Calling emit pushes an element into the stream, calling end ends it.
// Calls to emit after end have no effect, as do repeated calls to end.
// emit and end must be called on the stream's Scheduler.
type Emitter[T any] func(emit func(elem T), end func())

// Sink receives the elements of a stream.
type Sink[T any] interface {
	// Element is called for each element of the stream, in the order the elements were produced.
	Element(elem T)

	// End is called once after all elements.
	End()
}

// SinkFuncs adapts a pair of functions to Sink. Nil functions are not called.
type SinkFuncs[T any] struct {
	OnElement func(elem T)
	OnEnd     func()
}

// streamState is the lifecycle state of a stream.
// Releasing the buffer and ending the stream are independent of each other,
// so a stream can end before its buffer is released.
type streamState uint8

const (
	// stateBuffering holds pushed elements in the buffer. Sinks may be attached.
	stateBuffering streamState = iota

	// stateLive forwards pushed elements to attached sinks.
	stateLive

	// stateEndedBuffering has ended, but still replays its buffer to new sinks.
	stateEndedBuffering

	// stateEnded has ended. New sinks only receive the end signal.
	stateEnded
)

// Stream is a push-based, single-pass sequence of elements with any number of attached Sinks.
// A Stream is not safe for concurrent use.
//
// Every sink receives elements in the order they were pushed, unless a sink pushes into the stream
// from its own Element call: the nested element is delivered to all sinks first, so sinks attached
// after the pushing sink receive it before the element being delivered.
type Stream[T any] struct {
	sched Scheduler
	state streamState

	buf             []T
	releaseDeferred bool

	sinks []Sink[T]
}

// New returns a stream whose elements are produced by emitter.
// emitter is called before New returns.
func New[T any](sched Scheduler, emitter Emitter[T]) *Stream[T] {
	return newStream[T](sched, nil, emitter)
}

// newStream returns a stream whose buffer is seeded with buf, and whose further elements are produced by emitter.
func newStream[T any](sched Scheduler, buf []T, emitter Emitter[T]) *Stream[T] {
	s := &Stream[T]{
		sched: sched,
		state: stateBuffering,
		buf:   buf,
	}

	emitter(s.push, s.finish)

	return s
}

// Attach attaches sink to s.
//
// If s still holds its buffer, the buffered elements are delivered to sink before Attach returns,
// and the buffer is released on the next turn of the stream's Scheduler. All sinks attached
// before that turn see the full buffer.
//
// If s has already ended, sink receives the end signal before Attach returns.
// Otherwise, sink receives all elements pushed from now on, followed by the end signal.
func (s *Stream[T]) Attach(sink Sink[T]) {
	if s.holdsBuffer() {
		// Indexing instead of ranging also replays elements pushed by sink itself during replay.
		for i := 0; i < len(s.buf); i++ {
			sink.Element(s.buf[i])
		}

		s.deferRelease()
	}

	if s.ended() {
		sink.End()
		return
	}

	s.sinks = append(s.sinks, sink)
}

// Scheduler returns the Scheduler s defers its work to.
func (s *Stream[T]) Scheduler() Scheduler {
	return s.sched
}

// push is the emit callback given to the stream's Emitter.
func (s *Stream[T]) push(elem T) {
	switch s.state {
	case stateBuffering:
		s.buf = append(s.buf, elem)

		// Sinks attached in this turn have already seen the rest of the buffer.
		s.deliver(elem)

	case stateLive:
		s.deliver(elem)
	}
}

// deliver sends elem to the currently attached sinks, in the order they were attached.
func (s *Stream[T]) deliver(elem T) {
	// The range expression is evaluated once: sinks attached during delivery start with the next element.
	for _, sink := range s.sinks {
		// A sink ended the stream, the remaining sinks have already received the end signal.
		if s.ended() {
			return
		}

		sink.Element(elem)
	}
}

// finish is the end callback given to the stream's Emitter.
func (s *Stream[T]) finish() {
	switch s.state {
	case stateBuffering:
		s.state = stateEndedBuffering

	case stateLive:
		s.state = stateEnded

	default:
		return
	}

	sinks := s.sinks
	s.sinks = nil

	for _, sink := range sinks {
		sink.End()
	}
}

// deferRelease schedules the release of the buffer, unless it has already been scheduled.
func (s *Stream[T]) deferRelease() {
	if s.releaseDeferred {
		return
	}

	s.releaseDeferred = true

	s.sched.Defer(s.release)
}

// release drops the buffer. Elements pushed from now on are forwarded to sinks directly.
func (s *Stream[T]) release() {
	switch s.state {
	case stateBuffering:
		s.state = stateLive

	case stateEndedBuffering:
		s.state = stateEnded
	}

	s.buf = nil
}

func (s *Stream[T]) holdsBuffer() bool {
	return s.state == stateBuffering || s.state == stateEndedBuffering
}

func (s *Stream[T]) ended() bool {
	return s.state == stateEndedBuffering || s.state == stateEnded
}

// Element implements Sink.
func (f SinkFuncs[T]) Element(elem T) {
	if f.OnElement != nil {
		f.OnElement(elem)
	}
}

// End implements Sink.
func (f SinkFuncs[T]) End() {
	if f.OnEnd != nil {
		f.OnEnd()
	}
}
