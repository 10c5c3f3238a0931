package astar

import (
	"container/heap"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Solver is a stepwise A* search bound to a grid, a start and a goal.
// The zero value is not usable; construct with New.
type Solver struct {
	core.Base
	opts core.Options

	open   openQueue                           // frontier, min-heap on (f, h, state)
	inOpen map[gridgraph.State]*openItem       // state → its heap entry
	closed map[gridgraph.State]struct{}        // finalised states; only grows
	prev   map[gridgraph.State]gridgraph.State // best known predecessor
	gScore core.CostMap                        // best known cost from start
	fScore core.CostMap                        // gScore + heuristic
	steps  int                                 // expansions since reset
}

var _ core.Solver = (*Solver)(nil)

// New returns an A* solver seeded with start.
// Returns core.ErrNilGrid or core.ErrOutOfBounds for invalid input.
func New(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (*Solver, error) {
	if err := core.Validate(g, start, goal); err != nil {
		return nil, err
	}
	s := &Solver{opts: core.Apply(opts...)}
	s.Base = core.NewBase(g, start, goal, s.Reset)
	s.Reset()

	return s, nil
}

// Heuristic is the octile lower bound from a to b.
func Heuristic(a, b gridgraph.State) float64 {
	return gridgraph.Octile(a, b)
}

// Reset discards the open and closed sets and all scores, then seeds the
// open set with the start state at g = 0.
func (s *Solver) Reset() {
	s.open = make(openQueue, 0, 64)
	s.inOpen = make(map[gridgraph.State]*openItem)
	s.closed = make(map[gridgraph.State]struct{})
	s.prev = make(map[gridgraph.State]gridgraph.State)
	s.gScore = core.CostMap{}
	s.fScore = core.CostMap{}
	s.steps = 0

	start, goal := s.Start(), s.Goal()
	h := Heuristic(start, goal)
	s.gScore[start] = 0
	s.fScore[start] = h
	item := &openItem{state: start, g: 0, f: h, h: h}
	heap.Push(&s.open, item)
	s.inOpen[start] = item
}

// Step expands the best open state. It does nothing once the goal has been
// closed or the open set is empty.
func (s *Solver) Step() {
	if len(s.open) == 0 || s.Done() {
		return
	}
	s.steps++

	current := heap.Pop(&s.open).(*openItem)
	c := current.state
	delete(s.inOpen, c)
	s.closed[c] = struct{}{}
	s.opts.OnExpand(c)

	if c == s.Goal() {
		s.opts.Logger.Debug("astar: goal reached",
			"goal", c, "cost", s.gScore.Get(c), "steps", s.steps)
		return
	}

	grid := s.Grid()
	for _, n := range grid.NeighborsOf(c) {
		if _, done := s.closed[n]; done {
			continue
		}
		tentative := s.gScore.Get(c) + grid.Distance(c, n)
		if tentative >= s.gScore.Get(n) {
			continue
		}
		s.relax(c, n, tentative)
	}

	if len(s.open) == 0 {
		s.opts.Logger.Debug("astar: frontier exhausted",
			"goal", s.Goal(), "closed", len(s.closed), "steps", s.steps)
	}
}

// relax records the cheaper route to n through c and keeps the open set
// ordered.
func (s *Solver) relax(c, n gridgraph.State, g float64) {
	h := Heuristic(n, s.Goal())
	s.prev[n] = c
	s.gScore[n] = g
	s.fScore[n] = g + h

	if item, ok := s.inOpen[n]; ok {
		item.g, item.f = g, g+h
		heap.Fix(&s.open, item.index)
	} else {
		item = &openItem{state: n, g: g, f: g + h, h: h}
		heap.Push(&s.open, item)
		s.inOpen[n] = item
	}
	s.opts.OnDiscover(c, n, g)
}

// HasExplored reports whether st is in the closed set.
func (s *Solver) HasExplored(st gridgraph.State) bool {
	_, ok := s.closed[st]
	return ok
}

// Done reports whether the goal has been closed.
func (s *Solver) Done() bool { return s.HasExplored(s.Goal()) }

// Exhausted reports an empty open set with the goal never closed.
func (s *Solver) Exhausted() bool { return len(s.open) == 0 && !s.Done() }

// ReconstructPath returns the predecessor chain from the goal back to the
// start, goal first. Before Done the chain may be partial.
func (s *Solver) ReconstructPath() []gridgraph.State {
	return core.ReconstructPath(s.prev, s.Goal())
}

// Steps returns the number of expansions since the last reset.
func (s *Solver) Steps() int { return s.steps }

// GScore returns the best known cost from start to st, +Inf if unknown.
func (s *Solver) GScore(st gridgraph.State) float64 { return s.gScore.Get(st) }

// FScore returns g + h for st, +Inf if unknown.
func (s *Solver) FScore(st gridgraph.State) float64 { return s.fScore.Get(st) }

// InOpen reports whether st is on the frontier.
func (s *Solver) InOpen(st gridgraph.State) bool {
	_, ok := s.inOpen[st]
	return ok
}

// OpenLen returns the frontier size.
func (s *Solver) OpenLen() int { return len(s.open) }
