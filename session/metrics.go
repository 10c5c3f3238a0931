package session

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the session collectors. With a nil Registerer the
// collectors still work but are never exported.
type metrics struct {
	steps    *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	explored *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	resets   prometheus.Counter
}

// newMetrics builds the collectors and registers them on reg. Sessions
// sharing a registerer share the collectors already registered there.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		// steps counts solver Step calls by algorithm
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsearch_steps_total",
			Help: "Total solver steps by algorithm",
		}, []string{"algorithm"}),

		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsearch_runs_total",
			Help: "Finished runs by algorithm and outcome",
		}, []string{"algorithm", "status"}),

		explored: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stepsearch_run_explored_states",
			Help:    "States explored per finished run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stepsearch_run_duration_seconds",
			Help:    "Run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"algorithm"}),

		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stepsearch_resets_total",
			Help: "Solver resets caused by edits",
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.steps, err = register(reg, m.steps); err != nil {
		return nil, err
	}
	if m.outcomes, err = register(reg, m.outcomes); err != nil {
		return nil, err
	}
	if m.explored, err = register(reg, m.explored); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.resets, err = register(reg, m.resets); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, or returns the equivalent collector registered
// earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("session: register metrics: %w", err)
}
