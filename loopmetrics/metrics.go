package loopmetrics

import (
	"time"

	"github.com/deadlyengineer/pushstreams"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records the tasks of a Loop.
type Collector struct {
	TasksQueued   prometheus.Counter
	TasksRun      prometheus.Counter
	TasksPending  prometheus.Gauge
	TaskDurations prometheus.Histogram
}

var _ pushstreams.LoopObserver = (*Collector)(nil)

// New returns a Collector whose metrics are registered with reg, and labeled with the given loop name.
func New(reg prometheus.Registerer, name string) *Collector {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"loop": name}

	return &Collector{
		TasksQueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "pushstreams",
			Subsystem:   "loop",
			Name:        "tasks_queued_total",
			Help:        "Total number of tasks queued on the loop",
			ConstLabels: labels,
		}),
		TasksRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "pushstreams",
			Subsystem:   "loop",
			Name:        "tasks_run_total",
			Help:        "Total number of tasks run by the loop",
			ConstLabels: labels,
		}),
		TasksPending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "pushstreams",
			Subsystem:   "loop",
			Name:        "tasks_pending",
			Help:        "Number of tasks waiting for their turn",
			ConstLabels: labels,
		}),
		TaskDurations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "pushstreams",
			Subsystem:   "loop",
			Name:        "task_duration_seconds",
			Help:        "Time spent running a single task",
			Buckets:     prometheus.ExponentialBuckets(0.00001, 4, 10),
			ConstLabels: labels,
		}),
	}
}

// TaskQueued implements pushstreams.LoopObserver.
func (c *Collector) TaskQueued(pending int) {
	c.TasksQueued.Inc()
	c.TasksPending.Set(float64(pending))
}

// TaskDone implements pushstreams.LoopObserver.
func (c *Collector) TaskDone(pending int, elapsed time.Duration) {
	c.TasksRun.Inc()
	c.TasksPending.Set(float64(pending))
	c.TaskDurations.Observe(elapsed.Seconds())
}
