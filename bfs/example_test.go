package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/bfs"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// ExampleSolver shows that breadth-first search counts moves, not length:
// the detour over the top row takes as many moves as the straight line.
func ExampleSolver() {
	g, _ := gridgraph.New(5, 3)
	sol, _ := bfs.New(g, gridgraph.State{X: 0, Y: 1}, gridgraph.State{X: 4, Y: 1})
	for !sol.Done() && !sol.Exhausted() {
		sol.Step()
	}
	moves, _ := sol.Depth(sol.Goal())
	fmt.Println("moves:", moves)
	fmt.Println("route:", core.Reverse(sol.ReconstructPath()))
	// Output:
	// moves: 4
	// route: [(0,1) (1,0) (2,0) (3,0) (4,1)]
}
