// Package core defines the single-step Solver contract shared by every
// search algorithm in stepsearch, plus the pieces they have in common.
//
// The contract:
//
//   - Step advances the algorithm by exactly one unit of work and runs to
//     completion before returning. There are no goroutines and no locks; the
//     driver serialises Step, mutation and query calls.
//   - HasExplored reports whether a state has been finalised. For A* and
//     Dijkstra the explored set only grows between resets.
//   - Done is HasExplored(Goal()).
//   - Exhausted reports that the frontier ran dry without reaching the goal.
//     An unreachable goal is not an error: Done simply never turns true.
//   - ReconstructPath follows the predecessor chain from the goal and
//     returns states in goal-to-start order. Before Done, or after
//     exhaustion, the result is partial (possibly just the goal).
//   - Reset discards all search state and reseeds from the current start,
//     goal and grid. SetStart, SetGoal and SetGrid replace one input and
//     reset immediately.
//
// Shared helpers:
//
//   - Base embeds endpoint and grid bookkeeping with reset-on-mutate.
//   - CostMap is a State→float64 map whose absent keys read as +Inf.
//   - ReconstructPath, Reverse and PathCost operate on predecessor maps
//     and routes.
//   - Options carries hooks (OnExpand, OnDiscover), a *slog.Logger and a
//     random source; see DefaultOptions.
//
// Errors (sentinel):
//
//   - ErrNilGrid:     constructor received a nil *gridgraph.Grid.
//   - ErrOutOfBounds: start or goal lies outside the grid.
package core
