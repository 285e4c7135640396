package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	linesReadTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linesieve",
		Name:      "lines_read_total",
		Help:      "Total number of input lines read from the source.",
	})
	linesEmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linesieve",
		Name:      "lines_emitted_total",
		Help:      "Total number of lines written to the sink.",
	})
	errorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "linesieve",
		Name:      "errors_total",
		Help:      "Total number of runs aborted by a read or finalize error.",
	})
	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "linesieve",
			Name:      "run_duration_seconds",
			Help:      "Duration of filter runs in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

// Register registers all linesieve metrics to the provided Prometheus
// registerer. It is safe to call multiple times; AlreadyRegisteredError will
// be ignored.
func Register(r prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		linesReadTotal, linesEmittedTotal, errorsTotal, runDuration,
	}
	for _, c := range collectors {
		if err := r.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

// IncLinesRead increments the input lines counter by n.
func IncLinesRead(n int) {
	if n > 0 {
		linesReadTotal.Add(float64(n))
	}
}

// IncLinesEmitted increments the output lines counter by n.
func IncLinesEmitted(n int) {
	if n > 0 {
		linesEmittedTotal.Add(float64(n))
	}
}

// IncRunErrors increments the aborted-run counter by 1.
func IncRunErrors() { errorsTotal.Inc() }

// ObserveRunDuration records the duration of one filter run.
func ObserveRunDuration(command string, dur time.Duration) {
	if command == "" {
		command = "unknown"
	}
	runDuration.WithLabelValues(command).Observe(dur.Seconds())
}
