package session

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/stepsearch/core"
)

const instrumentationName = "github.com/katalvlaran/stepsearch/session"

// Options configures the ambient collaborators of a Session.
type Options struct {
	// Logger receives edit and run records; it is also handed to solvers.
	Logger *slog.Logger

	// Registerer receives the session metrics. nil registers nothing.
	// Sessions built on the same Registerer share one set of collectors.
	Registerer prometheus.Registerer

	// Tracer starts the span of each Run.
	Tracer trace.Tracer

	// SolverOptions are appended to every solver the session builds.
	SolverOptions []core.Option
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns slog.Default(), no metrics registration and the
// global OpenTelemetry tracer.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
		Tracer: otel.Tracer(instrumentationName),
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer registers the session metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// WithTracer sets the tracer used for Run spans; nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithSolverOptions forwards opts to every solver built by the session,
// after the session's own logger and seed.
func WithSolverOptions(opts ...core.Option) Option {
	return func(o *Options) { o.SolverOptions = append(o.SolverOptions, opts...) }
}
