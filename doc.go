// Package stepsearch is an incremental grid-search engine: a 2D occupancy
// grid and a family of pathfinding algorithms that all advance one unit of
// work per call, so the search can be observed, paused or replayed at
// cell-by-cell granularity.
//
// 🚀 What is inside?
//
//	• Grid: W×H occupancy, 8-connected moves, Euclidean step costs (1 or √2)
//	• A*: octile heuristic, decrease-key open set, deterministic tie-breaks
//	• Dijkstra: uniform-cost search over a pre-populated unvisited set
//	• Random walk: an undirected baseline with a seedable source
//	• Session: editing, stepping, snapshots, metrics and tracing
//
// ✨ The single-step contract
//
//   - Step advances the search; nothing runs in the background.
//   - HasExplored / Done / Exhausted expose progress after every step.
//   - ReconstructPath walks predecessors from the goal back to the start.
//   - Any change of start, goal or grid resets the solver; there is no
//     incremental replanning.
//
// Packages:
//
//	gridgraph/      — State and Grid: bounds, obstacles, neighbours, components
//	core/           — Solver interface, shared base, cost map, path helpers, options
//	astar/          — A* solver
//	dijkstra/       — Dijkstra solver
//	randomwalk/     — random-walk solver
//	bfs/            — breadth-first solver, fewest moves
//	algorithms/     — Kind registry: pick a solver by name
//	session/        — the driver: edits, Tick/Run, Snapshot/Render, metrics
//	cmd/stepsearch/ — batch CLI over session
//
// Quick ASCII frame (S start, G goal, # obstacle, * path, + explored):
//
//	S#.G
//	*#*.
//	.*+.
//
//	go install github.com/katalvlaran/stepsearch/cmd/stepsearch@latest
package stepsearch
