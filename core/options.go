package core

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Options holds the knobs and callbacks every solver accepts.
type Options struct {
	// Logger receives Debug records on terminal transitions.
	Logger *slog.Logger

	// OnExpand is called when a state is finalised (closed, visited or
	// explored, depending on the algorithm).
	OnExpand func(s gridgraph.State)

	// OnDiscover is called when relaxation records a cheaper route to `to`
	// through `from`; cost is the new best cost from start.
	OnDiscover func(from, to gridgraph.State, cost float64)

	// Rand drives randomised solvers. Deterministic solvers ignore it.
	Rand *rand.Rand
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - slog.Default() as logger
//   - no-op hooks
//   - a randomly seeded PCG source
func DefaultOptions() Options {
	return Options{
		Logger:     slog.Default(),
		OnExpand:   func(gridgraph.State) {},
		OnDiscover: func(_, _ gridgraph.State, _ float64) {},
		Rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Apply builds Options from DefaultOptions and opts.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run when a state is finalised.
func WithOnExpand(fn func(s gridgraph.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run on every successful relaxation.
func WithOnDiscover(fn func(from, to gridgraph.State, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithRand sets the random source used by randomised solvers.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh PCG source, making randomised solvers reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}
