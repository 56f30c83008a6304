package record

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics aggregates Prometheus instrumentation over solve-loop
// events: run and step counters plus a run-duration histogram. One
// Metrics value may observe any number of concurrent runs; per-run
// start instants are keyed by run ID.
type Metrics struct {
	runsStarted  prometheus.Counter
	runsFinished prometheus.Counter
	steps        prometheus.Counter
	runDuration  prometheus.Histogram

	mu     sync.Mutex
	starts map[string]time.Time
}

// NewMetrics builds the collectors and registers them with reg.
// Registration failures (typically duplicate registration) are
// returned as-is from the Prometheus client.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solvekit_runs_started_total",
			Help: "Total number of solve runs started",
		}),
		runsFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solvekit_runs_finished_total",
			Help: "Total number of solve runs finished",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solvekit_steps_total",
			Help: "Total number of algorithm steps across all runs",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "solvekit_run_duration_seconds",
			Help:    "Wall-clock duration of solve runs",
			Buckets: prometheus.DefBuckets,
		}),
		starts: make(map[string]time.Time),
	}
	for _, c := range []prometheus.Collector{m.runsStarted, m.runsFinished, m.steps, m.runDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler returns the Handler to register for every boundary event:
//
//	rec.On(record.Start, m.Handler()).
//	    On(record.PostStep, m.Handler()).
//	    On(record.Stop, m.Handler())
func (m *Metrics) Handler() Handler {
	return func(e Event, run Run) error {
		switch e {
		case Start:
			m.runsStarted.Inc()
			m.mu.Lock()
			m.starts[run.ID()] = time.Now()
			m.mu.Unlock()

		case PostStep:
			m.steps.Inc()

		case Stop:
			m.runsFinished.Inc()
			m.mu.Lock()
			start, ok := m.starts[run.ID()]
			delete(m.starts, run.ID())
			m.mu.Unlock()
			if ok {
				m.runDuration.Observe(time.Since(start).Seconds())
			}
		}

		return nil
	}
}
