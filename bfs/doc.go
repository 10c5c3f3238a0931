// Package bfs implements breadth-first search over a gridgraph.Grid as a
// core.Solver, one dequeue per Step.
//
// What
//
//   - Explores states in non-decreasing depth, the number of moves from the
//     start. Diagonal and straight moves count the same, so the route found
//     has the fewest moves but is not always the shortest in Euclidean
//     length (use astar or dijkstra for that).
//   - A state is discovered (queued, parent recorded) the first time it is
//     seen and explored when it is dequeued; HasExplored reports the latter.
//   - Neighbours are queued in gridgraph's fixed Moore order, so the visit
//     sequence is fully reproducible.
//   - LimitDepth stops queueing beyond a depth; 0 means no limit.
//
// Complexity
//
//   - Step:   O(8).
//   - Memory: O(W×H) for the queue, depth map and parent map.
package bfs
