// Package cronsource provides streams of the activation times of cron schedules.
package cronsource

import (
	"context"
	"fmt"
	"time"

	"github.com/deadlyengineer/pushstreams"
	"github.com/robfig/cron/v3"
)

// Options configures Schedule.
type Options struct {
	// Seconds requires a leading seconds field in the spec.
	Seconds bool

	// Location is the time zone the spec is interpreted in. Defaults to time.Local.
	Location *time.Location
}

// Schedule returns a stream that produces the activation times of the cron schedule spec.
// Supports the standard cron format "minute hour day month weekday",
// as well as descriptors like "@hourly" or "@every 1h30m".
//
// The stream ends when ctx is canceled.
func Schedule(ctx context.Context, sched pushstreams.Scheduler, spec string, opts Options) (*pushstreams.Stream[time.Time], error) {
	fields := cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
	if opts.Seconds {
		fields |= cron.Second
	}

	schedule, err := cron.NewParser(fields).Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	return pushstreams.New(sched, func(emit func(time.Time), end func()) {
		c := cron.New(cron.WithLocation(loc))

		c.Schedule(schedule, cron.FuncJob(func() {
			now := time.Now().In(loc)

			sched.Defer(func() {
				emit(now)
			})
		}))

		c.Start()

		go func() {
			<-ctx.Done()

			// Wait for running jobs, so that the end is queued after their elements.
			<-c.Stop().Done()

			sched.Defer(end)
		}()
	}), nil
}
