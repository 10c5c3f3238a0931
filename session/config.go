package session

import (
	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Config describes the initial scene of a Session.
type Config struct {
	Width, Height int
	Start, Goal   gridgraph.State

	// Algorithm selects the solver.
	Algorithm algorithms.Kind

	// MaxSteps caps the number of iterations per run; 0 disables the cap.
	// Random walk terminates only probabilistically, so drivers running it
	// unattended should set one.
	MaxSteps int

	// Seed makes randomised solvers reproducible; 0 draws a random seed.
	Seed uint64
}

// DefaultConfig returns the demo setup: a 100×100 grid searched with A*
// from (5,5) to (70,35), no step cap.
func DefaultConfig() Config {
	return Config{
		Width:     100,
		Height:    100,
		Start:     gridgraph.State{X: 5, Y: 5},
		Goal:      gridgraph.State{X: 70, Y: 35},
		Algorithm: algorithms.AStar,
	}
}

// DemoScene places the demo obstacles: a single cell at (2,20), a short
// horizontal bar near the top-left corner, a long horizontal wall and a
// vertical wall that shields the default goal. Cells outside g are skipped.
func DemoScene(g *gridgraph.Grid) {
	if g.InBounds(gridgraph.State{X: 2, Y: 20}) {
		g.SetObstacle(gridgraph.State{X: 2, Y: 20}, true)
	}
	g.BlockLine(gridgraph.State{X: 0, Y: 4}, 1, 0, 4)
	g.BlockLine(gridgraph.State{X: 12, Y: 15}, 1, 0, 30)
	g.BlockLine(gridgraph.State{X: 60, Y: 20}, 0, 1, 30)
}
