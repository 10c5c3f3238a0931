package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Solver holds the mutable breadth-first state.
type Solver struct {
	core.Base
	opts     core.Options
	maxDepth int

	queue    []queueItem
	depth    map[gridgraph.State]int // discovered states
	prev     map[gridgraph.State]gridgraph.State
	explored map[gridgraph.State]struct{}
	steps    int
}

var _ core.Solver = (*Solver)(nil)

// New returns a breadth-first solver with the start queued at depth 0.
func New(g *gridgraph.Grid, start, goal gridgraph.State, opts ...core.Option) (*Solver, error) {
	if err := core.Validate(g, start, goal); err != nil {
		return nil, err
	}
	s := &Solver{opts: core.Apply(opts...)}
	s.Base = core.NewBase(g, start, goal, s.Reset)
	s.Reset()

	return s, nil
}

// LimitDepth bounds the search to states at most d moves from the start and
// resets. d == 0 removes the limit; a negative d is rejected.
func (s *Solver) LimitDepth(d int) error {
	if d < 0 {
		return fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
	}
	s.maxDepth = d
	s.Reset()

	return nil
}

// Reset clears the search and enqueues the start.
func (s *Solver) Reset() {
	s.queue = s.queue[:0]
	s.depth = make(map[gridgraph.State]int)
	s.prev = make(map[gridgraph.State]gridgraph.State)
	s.explored = make(map[gridgraph.State]struct{})
	s.steps = 0
	s.enqueue(s.Start(), 0)
}

func (s *Solver) enqueue(st gridgraph.State, d int) {
	s.depth[st] = d
	s.queue = append(s.queue, queueItem{state: st, depth: d})
}

// Step dequeues one state, marks it explored and, unless it is the goal,
// queues its undiscovered neighbours.
func (s *Solver) Step() {
	if len(s.queue) == 0 || s.Done() {
		return
	}
	s.steps++

	item := s.queue[0]
	s.queue = s.queue[1:]
	s.explored[item.state] = struct{}{}
	s.opts.OnExpand(item.state)

	if item.state == s.Goal() {
		s.opts.Logger.Debug("bfs: goal dequeued", "goal", item.state, "depth", item.depth, "steps", s.steps)
		return
	}

	next := item.depth + 1
	if s.maxDepth > 0 && next > s.maxDepth {
		return
	}
	for _, n := range s.Grid().NeighborsOf(item.state) {
		if _, seen := s.depth[n]; seen {
			continue
		}
		s.prev[n] = item.state
		s.enqueue(n, next)
		s.opts.OnDiscover(item.state, n, float64(next))
	}
	if len(s.queue) == 0 {
		s.opts.Logger.Debug("bfs: queue exhausted", "goal", s.Goal(), "steps", s.steps)
	}
}

// HasExplored reports whether st has been dequeued.
func (s *Solver) HasExplored(st gridgraph.State) bool {
	_, ok := s.explored[st]
	return ok
}

// Done reports whether the goal has been dequeued.
func (s *Solver) Done() bool { return s.HasExplored(s.Goal()) }

// Exhausted reports an empty queue without the goal.
func (s *Solver) Exhausted() bool { return len(s.queue) == 0 && !s.Done() }

// ReconstructPath follows parent links from the goal, goal first.
func (s *Solver) ReconstructPath() []gridgraph.State {
	return core.ReconstructPath(s.prev, s.Goal())
}

// Steps returns the number of dequeues since the last reset.
func (s *Solver) Steps() int { return s.steps }

// Depth returns the number of moves from start to st and whether st has
// been discovered.
func (s *Solver) Depth(st gridgraph.State) (int, bool) {
	d, ok := s.depth[st]
	return d, ok
}
