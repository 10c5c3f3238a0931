// Package gridgraph treats a W×H discrete plane with obstacles as an
// 8-connected graph, the state space every solver in stepsearch walks.
//
// What:
//
//   - State is an immutable (x,y) coordinate with structural equality and a
//     lexicographic order (x, then y) used only for deterministic containers.
//   - Grid owns a single contiguous occupancy buffer, row-major, default free.
//   - NeighborsOf returns the Moore neighbourhood (3×3 block minus the cell)
//     filtered to in-bounds, unoccupied cells, in a fixed scan order.
//   - Distance is Euclidean, so orthogonal moves cost 1 and diagonal moves √2.
//   - Octile is the matching admissible lower bound used by A*.
//
// Ownership:
//
//   - The driver owns a Grid and is the only writer (SetObstacle,
//     ToggleObstacle, ClearObstacles, BlockLine).
//   - Solvers keep a read-only reference and must be reset whenever the
//     occupancy they depend on changes.
//
// Complexity:
//
//   - InBounds, ObstacleAt, SetObstacle, Distance: O(1).
//   - NeighborsOf: O(1), at most 8 results.
//   - Components:  O(W×H×8), Memory: O(W×H).
//   - Resize:      O(W×H) over the overlapping region.
//
// Errors:
//
//   - ErrEmptyGrid: requested or supplied grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (From2D).
//
// Out-of-bounds access through ObstacleAt/SetObstacle is a programming error
// and panics; callers check InBounds first, as NeighborsOf does internally.
package gridgraph
