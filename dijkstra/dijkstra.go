package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Solver holds the mutable state of one stepwise Dijkstra run.
// The zero value is not usable; construct with New.
type Solver struct {
	core.Base
	opts core.Options

	dist      core.CostMap                        // tentative distance from start
	prev      map[gridgraph.State]gridgraph.State // predecessor on the best route
	unvisited map[gridgraph.State]struct{}        // not yet finalised
	visited   map[gridgraph.State]struct{}        // finalised; only grows
	pq        nodePQ                              // lazy min-heap of reachable states
	steps     int                                 // finalisations since reset
}

var _ core.Solver = (*Solver)(nil)

// New returns a Dijkstra solver with every free cell unvisited and the
// start at distance 0.
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

// Reset marks every unobstructed cell (and the start) unvisited, clears
// distances and predecessors, and queues the start at distance 0.
func (s *Solver) Reset() {
	g, start := s.Grid(), s.Start()
	n := g.FreeCells() + 1

	s.dist = make(core.CostMap, n)
	s.prev = make(map[gridgraph.State]gridgraph.State, n)
	s.unvisited = make(map[gridgraph.State]struct{}, n)
	s.visited = make(map[gridgraph.State]struct{}, n)
	s.pq = make(nodePQ, 0, n)
	s.steps = 0

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			st := gridgraph.State{X: x, Y: y}
			if st == start || !g.ObstacleAt(st) {
				s.unvisited[st] = struct{}{}
			}
		}
	}

	s.dist[start] = 0
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem{id: start, dist: 0})
}

// Step finalises the unvisited state with the smallest tentative distance
// after relaxing its unvisited neighbours. It does nothing once the goal is
// visited or every remaining unvisited state is at distance +Inf.
func (s *Solver) Step() {
	if s.Done() || s.frontierEmpty() {
		return
	}
	current := heap.Pop(&s.pq).(*nodeItem).id
	s.steps++

	g := s.Grid()
	d := s.dist.Get(current)
	for _, n := range g.NeighborsOf(current) {
		if s.HasExplored(n) {
			continue
		}
		nd := d + g.Distance(current, n)
		if nd >= s.dist.Get(n) {
			continue
		}
		s.dist[n] = nd
		s.prev[n] = current
		heap.Push(&s.pq, &nodeItem{id: n, dist: nd})
		s.opts.OnDiscover(current, n, nd)
	}

	delete(s.unvisited, current)
	s.visited[current] = struct{}{}
	s.opts.OnExpand(current)

	switch {
	case current == s.Goal():
		s.opts.Logger.Debug("dijkstra: goal reached",
			"goal", current, "distance", d, "steps", s.steps)
	case s.frontierEmpty():
		s.opts.Logger.Debug("dijkstra: frontier exhausted",
			"goal", s.Goal(), "unvisited", len(s.unvisited), "steps", s.steps)
	}
}

// frontierEmpty discards stale heap entries (states already visited) from
// the top and reports whether no unvisited state has a finite distance.
func (s *Solver) frontierEmpty() bool {
	for s.pq.Len() > 0 {
		if _, ok := s.unvisited[s.pq[0].id]; ok {
			return false
		}
		heap.Pop(&s.pq)
	}

	return true
}

// HasExplored reports whether st has been visited, i.e. removed from the
// unvisited set by a Step.
func (s *Solver) HasExplored(st gridgraph.State) bool {
	_, ok := s.visited[st]
	return ok
}

// Done reports whether the goal has been visited.
func (s *Solver) Done() bool { return s.HasExplored(s.Goal()) }

// Exhausted reports that every remaining unvisited state is unreachable
// and the goal was not visited.
func (s *Solver) Exhausted() bool { return !s.Done() && s.frontierEmpty() }

// ReconstructPath walks predecessors from the goal, goal first. If the goal
// has no predecessor the result is just [goal].
func (s *Solver) ReconstructPath() []gridgraph.State {
	return core.ReconstructPath(s.prev, s.Goal())
}

// Steps returns the number of finalised states since the last reset.
func (s *Solver) Steps() int { return s.steps }

// Distance returns the tentative distance of st, +Inf if never reached.
// Once st is visited the value is final.
func (s *Solver) Distance(st gridgraph.State) float64 { return s.dist.Get(st) }

// Unvisited returns the number of states not yet finalised.
func (s *Solver) Unvisited() int { return len(s.unvisited) }
