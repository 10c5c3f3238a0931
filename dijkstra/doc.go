// Package dijkstra implements Dijkstra's uniform-cost search over a
// gridgraph.Grid as a core.Solver, one vertex finalisation per Step.
//
// Overview:
//
//   - At Reset the unvisited set is populated with every unobstructed cell
//     plus the start, and the start gets tentative distance 0. Memory and
//     the number of steps therefore scale with the free-cell count, not with
//     the size of a frontier.
//   - Each Step selects the unvisited state with the smallest tentative
//     distance, relaxes its unvisited neighbours and marks it visited.
//     There is no geometric tie-break; equal distances resolve by the
//     lexicographic State order.
//   - Done is HasExplored(goal): the goal has left the unvisited set.
//
// Selection uses a min-heap with the “lazy decrease-key” pattern: a cheaper
// route pushes a new entry and stale entries are skipped when popped. When
// the heap holds no unvisited state, everything left in the unvisited set is
// unreachable (distance +Inf): Step becomes a no-op and Exhausted reports
// true unless the goal was visited. A walled-off goal therefore never
// counts as explored.
//
// Complexity:
//
//   - Reset: O(W×H).
//   - Step:  O(8 log N) amortised, N ≤ number of heap pushes.
//   - Space: O(W×H).
//
// Thread safety:
//
//   - None. The driver serialises all calls, and must Reset after editing
//     the grid the solver reads.
package dijkstra
