// Package session drives a stepwise search the way an interactive front
// end would, without any presentation layer.
//
// A Session owns the grid, the two endpoints and exactly one solver. Edits
// (obstacles, endpoints, grid size, algorithm) are accepted at any time
// between steps; every edit resets the solver and the iteration counter,
// there is no incremental replanning. Tick advances the search by one step,
// Run loops Tick until the goal is found, the frontier is exhausted, the
// step limit is hit or the context is cancelled.
//
// Observability:
//
//   - log/slog for edits and run outcomes,
//   - Prometheus counters and histograms registered on an injected
//     prometheus.Registerer (nothing is registered by default),
//   - one OpenTelemetry span per Run.
//
// A Session is not safe for concurrent use; the caller serialises all calls,
// exactly as a UI timer would.
package session
