// Package pushstreams provides push-based, single-pass streams of elements.
//
// A Stream is constructed from an Emitter, which is called exactly once during construction and is given
// two callbacks: one to push an element into the stream, and one to end it. Delivery is driven by the
// producer: consumers (Sinks) attached to a stream receive elements as they are pushed, in order,
// followed by a single end signal.
//
// Elements pushed before any Sink has been attached are not lost. A stream holds them in a buffer
// and replays the buffer to every Sink attached within the same turn of its Scheduler. The buffer
// is released on the next turn, after which late Sinks only see elements pushed from then on.
//
// Streams are meant to be driven by a single-threaded cooperative Scheduler, such as Loop.
// Streams and Futures are not safe for concurrent use; only Loop.Defer and the resolve and reject
// functions of a Future may be called from other goroutines.
//
// Elements may be operated upon using filtering and mapping operations, streams of streams may be
// flattened using InterleaveMap, and streams of Futures may be flattened using InterleaveFutures.
// Terminal operations such as Reduce or Count return Futures that settle once a stream ends.
//
// Streams have no error channel, no backpressure and no cancellation. A panic in a Predicate,
// Function or Sink unwinds through the emit call that triggered it.
package pushstreams
