package pushstreams

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs tasks on a later turn of a single-threaded cooperative loop.
type Scheduler interface {
	// Defer queues task to run on a later turn. Defer must not run task before it returns.
	Defer(task func())
}

// LoopObserver is notified about the tasks of a Loop.
type LoopObserver interface {
	// TaskQueued is called after a task has been queued.
	// It may be called from any goroutine.
	TaskQueued(pending int)

	// TaskDone is called on the loop's goroutine after a task has returned or panicked.
	TaskDone(pending int, elapsed time.Duration)
}

// LoopOption configures a Loop.
type LoopOption func(l *Loop)

// Loop is a single-threaded Scheduler. Each task runs in its own turn, in the order the tasks were queued.
//
// Tasks may be queued from any goroutine, but they only run while the loop is being run by Run or RunUntilIdle.
// Queueing never blocks, so if queueing outruns running, the queue grows without bounds.
type Loop struct {
	log *slog.Logger
	obs LoopObserver

	mu    sync.Mutex
	queue []func()

	// wake has a capacity of 1, a pending value means the queue may have grown.
	wake chan struct{}

	running atomic.Bool
}

type nopObserver struct{}

// NewLoop returns a new, idle Loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		obs:  nopObserver{},
		wake: make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithLogger sets the logger of a Loop.
func WithLogger(log *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.log = log
	}
}

// WithObserver sets the LoopObserver of a Loop.
func WithObserver(obs LoopObserver) LoopOption {
	return func(l *Loop) {
		l.obs = obs
	}
}

// Defer implements Scheduler. It is safe to call Defer from any goroutine.
func (l *Loop) Defer(task func()) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	pending := len(l.queue)
	l.mu.Unlock()

	l.obs.TaskQueued(pending)

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.queue)
}

// RunUntilIdle runs queued tasks until the queue is empty, including tasks queued by those tasks.
// It returns the number of tasks run.
// RunUntilIdle panics if the loop is already running.
func (l *Loop) RunUntilIdle() int {
	l.enter()
	defer l.running.Store(false)

	count := 0
	for l.runNext() {
		count++
	}

	return count
}

// Run runs tasks as they are queued, until ctx is canceled.
// It returns the cause of the cancelation.
// Run panics if the loop is already running.
func (l *Loop) Run(ctx context.Context) error {
	l.enter()
	defer l.running.Store(false)

	l.log.Debug("Loop started")

	for {
		if contextDone(ctx) {
			err := context.Cause(ctx)
			l.log.Debug("Loop stopped", "cause", err, "pending", l.Pending())

			return err
		}

		if l.runNext() {
			continue
		}

		select {
		case <-ctx.Done():
		case <-l.wake:
		}
	}
}

func (l *Loop) enter() {
	if !l.running.CompareAndSwap(false, true) {
		l.log.Warn("Attempted to run a loop from one of its own tasks or from a second goroutine")
		panic("loop already running")
	}
}

// runNext runs the oldest queued task, if any, and reports whether it did.
func (l *Loop) runNext() bool {
	l.mu.Lock()
	if len(l.queue) == 0 {
		l.mu.Unlock()
		return false
	}

	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	pending := len(l.queue)
	l.mu.Unlock()

	start := time.Now()

	// Report panicking tasks as done too.
	defer func() {
		l.obs.TaskDone(pending, time.Since(start))
	}()

	task()

	return true
}

func (nopObserver) TaskQueued(int) {}

func (nopObserver) TaskDone(int, time.Duration) {}

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
