// Package randomwalk implements an undirected exploration baseline as a
// core.Solver. It keeps no costs and no predecessors; it exists to contrast
// against informed search.
//
// Per Step: pick a uniformly random explored state, pick a uniformly random
// free neighbour of it, and mark that neighbour explored if it is new.
// Done means the goal was reached by chance. Termination is only
// probabilistic, so drivers cap the number of steps (session.Config.MaxSteps).
package randomwalk

import (
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Solver is a random walk over the explored region. Construct with New;
// pass core.WithSeed for reproducible runs.
type Solver struct {
	core.Base
	opts core.Options

	explored []gridgraph.State            // discovery order, for uniform picks
	seen     map[gridgraph.State]struct{} // membership of explored
	steps    int
}

var _ core.Solver = (*Solver)(nil)

// New returns a random-walk solver whose explored set holds only start.
func New(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (*Solver, error) {
	if err := core.Validate(g, start, goal); err != nil {
		return nil, err
	}
	s := &Solver{opts: core.Apply(opts...)}
	s.Base = core.NewBase(g, start, goal, s.Reset)
	s.Reset()

	return s, nil
}

// Reset reseeds the explored set with the start state. The random source
// is left as is.
func (s *Solver) Reset() {
	start := s.Start()
	s.explored = []gridgraph.State{start}
	s.seen = map[gridgraph.State]struct{}{start: {}}
	s.steps = 0
}

// Step grows the explored set by at most one state. A pick with no free
// neighbour does nothing; Step is a no-op once Done or Exhausted.
func (s *Solver) Step() {
	if s.Done() || s.Exhausted() {
		return
	}
	s.steps++

	r := s.opts.Rand
	from := s.explored[r.IntN(len(s.explored))]
	ns := s.Grid().NeighborsOf(from)
	if len(ns) == 0 {
		return
	}
	n := ns[r.IntN(len(ns))]
	if s.HasExplored(n) {
		return
	}
	s.explored = append(s.explored, n)
	s.seen[n] = struct{}{}
	s.opts.OnExpand(n)

	if n == s.Goal() {
		s.opts.Logger.Debug("randomwalk: goal reached by chance",
			"goal", n, "explored", len(s.explored), "steps", s.steps)
	}
}

// HasExplored reports whether st has been visited by the walk.
func (s *Solver) HasExplored(st gridgraph.State) bool {
	_, ok := s.seen[st]
	return ok
}

// Done reports whether the walk has reached the goal.
func (s *Solver) Done() bool { return s.HasExplored(s.Goal()) }

// Exhausted reports that the walk cannot grow any further: the only
// explored state is the start and it has no free neighbour. Larger
// explored regions always have a move available, even if every move
// revisits a known state.
func (s *Solver) Exhausted() bool {
	return !s.Done() && len(s.explored) == 1 && len(s.Grid().NeighborsOf(s.Start())) == 0
}

// ReconstructPath always returns an empty route: the walk keeps no
// predecessor chain.
func (s *Solver) ReconstructPath() []gridgraph.State {
	return []gridgraph.State{}
}

// Steps returns the number of Step calls that drew a state since the last
// reset.
func (s *Solver) Steps() int { return s.steps }

// Explored returns a copy of the explored states in discovery order.
func (s *Solver) Explored() []gridgraph.State {
	out := make([]gridgraph.State, len(s.explored))
	copy(out, s.explored)

	return out
}
