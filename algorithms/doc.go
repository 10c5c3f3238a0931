// Package algorithms is the registry of stepwise search algorithms.
//
// It maps an algorithm Kind to the constructor of a core.Solver:
//
//   - AStar      – astar.New, octile heuristic, optimal
//   - Dijkstra   – dijkstra.New, uniform cost, optimal
//   - RandomWalk – randomwalk.New, undirected baseline, no route
//   - BFS        – bfs.New, fewest moves, not length-optimal
//
// Drivers select an algorithm by Kind (or by name through ParseKind) and
// work with the result only through the core.Solver interface, so swapping
// algorithms never changes the driver.
package algorithms
