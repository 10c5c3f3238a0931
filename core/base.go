package core

import "github.com/katalvlaran/stepsearch/gridgraph"

// Base carries the inputs every solver is bound to: a non-owning grid
// reference and the two endpoints. Embedding it provides Start, Goal, Grid
// and the reset-on-mutate setters of the Solver contract.
type Base struct {
	grid        *gridgraph.Grid
	start, goal gridgraph.State
	reset       func()
}

// NewBase binds g, start and goal. reset is invoked by every setter and is
// normally the embedding solver's Reset method.
func NewBase(g *gridgraph.Grid, start, goal gridgraph.State, reset func()) Base {
	return Base{grid: g, start: start, goal: goal, reset: reset}
}

// Start returns the start state.
func (b *Base) Start() gridgraph.State { return b.start }

// Goal returns the goal state.
func (b *Base) Goal() gridgraph.State { return b.goal }

// Grid returns the grid the solver reads.
func (b *Base) Grid() *gridgraph.Grid { return b.grid }

// SetStart replaces the start state and resets.
func (b *Base) SetStart(s gridgraph.State) {
	b.start = s
	b.reset()
}

// SetGoal replaces the goal state and resets.
func (b *Base) SetGoal(s gridgraph.State) {
	b.goal = s
	b.reset()
}

// SetGrid replaces the grid reference and resets. The grid is not copied.
// A nil grid is ignored and does not reset.
func (b *Base) SetGrid(g *gridgraph.Grid) {
	if g == nil {
		return
	}
	b.grid = g
	b.reset()
}
