package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Sentinel errors returned by solver constructors and the driver.
var (
	// ErrNilGrid indicates that a nil grid was supplied.
	ErrNilGrid = errors.New("core: grid is nil")

	// ErrOutOfBounds indicates a state outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("core: state out of bounds")
)

// Solver is the capability set every search algorithm implements.
// All methods are synchronous; see the package documentation for the
// exact semantics of each operation.
type Solver interface {
	// Step advances the search by one unit of work. It is a no-op once the
	// search has terminated.
	Step()

	// HasExplored reports whether s has been finalised in the current run.
	HasExplored(s gridgraph.State) bool

	// Done reports HasExplored(Goal()).
	Done() bool

	// Exhausted reports that no further Step can make progress and the goal
	// was not reached.
	Exhausted() bool

	// ReconstructPath returns the route from Goal back to Start, goal first.
	ReconstructPath() []gridgraph.State

	// Reset clears all search state and reseeds from Start, Goal and Grid.
	Reset()

	// Steps returns the number of Step calls that performed work since the
	// last reset.
	Steps() int

	SetStart(s gridgraph.State)
	SetGoal(s gridgraph.State)
	// SetGrid rebinds the solver to g and resets; nil is ignored.
	SetGrid(g *gridgraph.Grid)

	Start() gridgraph.State
	Goal() gridgraph.State
	Grid() *gridgraph.Grid
}

// Validate checks the construction inputs shared by every solver.
// Returns ErrNilGrid or ErrOutOfBounds wrapped with the offending state.
func Validate(g *gridgraph.Grid, start, goal gridgraph.State) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Width(), g.Height())
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, g.Width(), g.Height())
	}

	return nil
}
