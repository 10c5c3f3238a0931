package algorithms

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/astar"
	"github.com/katalvlaran/stepsearch/bfs"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/dijkstra"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/randomwalk"
)

// Constructor builds a solver bound to a grid and two endpoints.
type Constructor func(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error)

var constructors = map[Kind]Constructor{
	AStar: func(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error) {
		return astar.New(g, start, goal, opts...)
	},
	Dijkstra: func(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error) {
		return dijkstra.New(g, start, goal, opts...)
	},
	RandomWalk: func(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error) {
		return randomwalk.New(g, start, goal, opts...)
	},
	BFS: func(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error) {
		return bfs.New(g, start, goal, opts...)
	},
}

// New constructs the solver registered for kind.
//
// Errors:
//   - ErrUnknownKind if kind is not registered.
//   - core.ErrNilGrid, core.ErrOutOfBounds from the constructor.
func New(kind Kind, g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (core.Solver, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	s, err := ctor(g, start, goal, opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}

	return s, nil
}

// Run steps s until it is Done, Exhausted or maxSteps Step calls have been
// made (maxSteps <= 0 means no cap). It reports whether the goal was reached.
func Run(s core.Solver, maxSteps int) bool {
	for i := 0; !s.Done() && !s.Exhausted(); i++ {
		if maxSteps > 0 && i >= maxSteps {
			break
		}
		s.Step()
	}

	return s.Done()
}
