// Package astar implements A* best-first search over a gridgraph.Grid as a
// core.Solver: one Step expands exactly one state.
//
// Per Step:
//
//  1. If the search has terminated (goal closed or open set empty), return.
//  2. Pop the open state with the smallest f = g + h. States whose f differ
//     by at most 1e-4 are ordered by the smaller heuristic h, i.e. the one
//     geometrically closer to the goal; remaining ties fall back to the
//     lexicographic State order so runs are reproducible.
//  3. Move it to the closed set. If it is the goal, stop.
//  4. For every neighbour not yet closed, compute g(current) + Distance and
//     relax: on improvement record the predecessor, g and f, pushing the
//     neighbour onto the open set or fixing its heap position.
//
// The heuristic is the octile distance, admissible and consistent for
// 8-connected moves costing 1 and √2, so the first time the goal is closed
// its g-score is optimal.
//
// Missing-key policy: GScore and FScore return +Inf for states never
// assigned.
//
// Complexity:
//
//   - Step: O(8 log N) with N = |open|.
//   - Memory: O(explored + open).
package astar
