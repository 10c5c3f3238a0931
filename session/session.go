package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// ErrInvalidConfig indicates a Config field outside its domain.
var ErrInvalidConfig = errors.New("session: invalid config")

// Status is the state of the current run as seen by the driver.
type Status int

const (
	// Running means another Tick can make progress.
	Running Status = iota
	// Found means the goal has been explored.
	Found
	// Exhausted means the frontier is empty and the goal was not reached.
	Exhausted
	// StepLimit means Config.MaxSteps iterations were spent without a result.
	StepLimit
)

var statusNames = [...]string{
	Running:   "running",
	Found:     "found",
	Exhausted: "exhausted",
	StepLimit: "step_limit",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// Result summarises a finished (or cancelled) run.
type Result struct {
	Algorithm algorithms.Kind
	Status    Status
	Steps     int // iterations since the last reset
	Explored  int // states for which HasExplored holds

	// Path runs start to goal. It is nil unless Status is Found, and empty
	// for solvers that keep no predecessors.
	Path []gridgraph.State
	// Cost is the Euclidean length of Path, +Inf when the goal was not found.
	Cost float64

	Duration time.Duration
}

// Session owns a grid, its endpoints and one solver.
type Session struct {
	opts     Options
	m        *metrics
	seed     uint64
	maxSteps int

	grid        *gridgraph.Grid
	start, goal gridgraph.State
	kind        algorithms.Kind
	solver      core.Solver
	iterations  int
}

// New builds a Session over an obstacle-free cfg.Width×cfg.Height grid.
//
// Errors:
//   - gridgraph.ErrEmptyGrid for non-positive dimensions.
//   - ErrInvalidConfig for a negative MaxSteps.
//   - core.ErrOutOfBounds when Start or Goal lie outside the grid.
//   - algorithms.ErrUnknownKind for an unregistered Algorithm.
//   - a registration error when the Registerer already holds a conflicting
//     collector under one of the session metric names.
func New(cfg Config, opts ...Option) (*Session, error) {
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: MaxSteps %d < 0", ErrInvalidConfig, cfg.MaxSteps)
	}
	g, err := gridgraph.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Session{
		opts:     o,
		m:        m,
		seed:     seed,
		maxSteps: cfg.MaxSteps,
		grid:     g,
		start:    cfg.Start,
		goal:     cfg.Goal,
	}
	if err = s.rebuild(cfg.Algorithm); err != nil {
		return nil, err
	}

	return s, nil
}

// ------------------------------------------------------------------------
// Editing
// ------------------------------------------------------------------------

// ToggleObstacle flips the cell at st and returns its new occupancy.
func (s *Session) ToggleObstacle(st gridgraph.State) (bool, error) {
	if err := s.checkBounds(st); err != nil {
		return false, err
	}
	blocked := s.grid.ToggleObstacle(st)
	s.gridChanged()
	s.opts.Logger.Debug("session: obstacle toggled", "cell", st, "blocked", blocked)

	return blocked, nil
}

// SetObstacle sets the occupancy of st.
func (s *Session) SetObstacle(st gridgraph.State, blocked bool) error {
	if err := s.checkBounds(st); err != nil {
		return err
	}
	s.grid.SetObstacle(st, blocked)
	s.gridChanged()

	return nil
}

// ClearObstacles frees every cell.
func (s *Session) ClearObstacles() {
	s.grid.ClearObstacles()
	s.gridChanged()
}

// ApplyScene lets scene edit the grid in place (DemoScene, for example),
// then resets.
func (s *Session) ApplyScene(scene func(g *gridgraph.Grid)) {
	scene(s.grid)
	s.gridChanged()
	s.opts.Logger.Debug("session: scene applied", "free", s.grid.FreeCells())
}

// MoveStart moves the start state.
func (s *Session) MoveStart(st gridgraph.State) error {
	if err := s.checkBounds(st); err != nil {
		return err
	}
	s.start = st
	s.solver.SetStart(st)
	s.restart()
	s.opts.Logger.Debug("session: start moved", "start", st)

	return nil
}

// MoveGoal moves the goal state.
func (s *Session) MoveGoal(st gridgraph.State) error {
	if err := s.checkBounds(st); err != nil {
		return err
	}
	s.goal = st
	s.solver.SetGoal(st)
	s.restart()
	s.opts.Logger.Debug("session: goal moved", "goal", st)

	return nil
}

// Resize replaces the grid with a w×h one, keeping the obstacles of the
// overlapping region. Endpoints that fall outside are clamped to the
// nearest in-bounds cell.
func (s *Session) Resize(w, h int) error {
	ng, err := s.grid.Resize(w, h)
	if err != nil {
		return fmt.Errorf("session: resize to %dx%d: %w", w, h, err)
	}
	s.grid = ng
	s.start = ng.Clamp(s.start)
	s.goal = ng.Clamp(s.goal)
	s.opts.Logger.Info("session: grid resized", "width", w, "height", h,
		"start", s.start, "goal", s.goal)

	return s.rebuild(s.kind)
}

// UseAlgorithm swaps the solver for a fresh one of kind. Nothing carries
// over from the previous solver.
func (s *Session) UseAlgorithm(kind algorithms.Kind) error {
	if err := s.rebuild(kind); err != nil {
		return err
	}
	s.opts.Logger.Info("session: algorithm selected", "algorithm", kind)

	return nil
}

// ------------------------------------------------------------------------
// Stepping
// ------------------------------------------------------------------------

// Status reports the state of the current run without stepping.
func (s *Session) Status() Status {
	switch {
	case s.solver.Done():
		return Found
	case s.solver.Exhausted():
		return Exhausted
	case s.maxSteps > 0 && s.iterations >= s.maxSteps:
		return StepLimit
	}

	return Running
}

// Tick performs one solver step unless the run is already finished, and
// returns the resulting status.
func (s *Session) Tick() Status {
	if st := s.Status(); st != Running {
		return st
	}
	s.iterations++
	s.solver.Step()
	s.m.steps.WithLabelValues(s.kind.String()).Inc()

	return s.Status()
}

// Run ticks until the run finishes or ctx is done. A cancelled run returns
// the partial Result together with the context error; the search state is
// kept, so a later Run resumes where this one stopped.
func (s *Session) Run(ctx context.Context) (Result, error) {
	ctx, span := s.opts.Tracer.Start(ctx, "session.Session.Run",
		trace.WithAttributes(
			attribute.String("algorithm", s.kind.String()),
			attribute.Int("width", s.grid.Width()),
			attribute.Int("height", s.grid.Height()),
			attribute.String("start", s.start.String()),
			attribute.String("goal", s.goal.String()),
		))
	defer span.End()

	began := time.Now()
	if !s.grid.Reachable(s.start, s.goal) {
		span.AddEvent("goal_unreachable")
		s.opts.Logger.Info("session: goal unreachable, search will exhaust",
			"start", s.start, "goal", s.goal)
	}

	status := s.Status()
	for status == Running {
		if err := ctx.Err(); err != nil {
			res := s.result(status, time.Since(began))
			span.RecordError(err)
			span.SetStatus(codes.Error, "run cancelled")
			s.opts.Logger.Warn("session: run cancelled",
				"algorithm", s.kind, "steps", res.Steps, "err", err)

			return res, fmt.Errorf("session: run cancelled after %d steps: %w", res.Steps, err)
		}
		status = s.Tick()
	}

	res := s.result(status, time.Since(began))
	s.observe(res)

	span.SetAttributes(
		attribute.String("status", res.Status.String()),
		attribute.Int("steps", res.Steps),
		attribute.Int("explored", res.Explored),
		attribute.Int64("duration_us", res.Duration.Microseconds()),
	)
	span.SetStatus(codes.Ok, "run finished")
	s.opts.Logger.Info("session: run finished",
		"algorithm", s.kind,
		"status", res.Status,
		"steps", res.Steps,
		"explored", res.Explored,
		"path_len", len(res.Path),
		"cost", res.Cost,
		"duration", res.Duration)

	return res, nil
}

// ------------------------------------------------------------------------
// Accessors
// ------------------------------------------------------------------------

// Grid returns the grid the session owns. Mutating it directly bypasses the
// reset; use the editing methods or ApplyScene instead.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Start returns the start state.
func (s *Session) Start() gridgraph.State { return s.start }

// Goal returns the goal state.
func (s *Session) Goal() gridgraph.State { return s.goal }

// Algorithm returns the kind of the active solver.
func (s *Session) Algorithm() algorithms.Kind { return s.kind }

// Solver returns the active solver for read-only inspection.
func (s *Session) Solver() core.Solver { return s.solver }

// Iterations returns the number of Ticks that stepped since the last reset.
func (s *Session) Iterations() int { return s.iterations }

// ------------------------------------------------------------------------
// internals
// ------------------------------------------------------------------------

func (s *Session) checkBounds(st gridgraph.State) error {
	if !s.grid.InBounds(st) {
		return fmt.Errorf("%w: %v in %dx%d grid", core.ErrOutOfBounds, st, s.grid.Width(), s.grid.Height())
	}

	return nil
}

// rebuild constructs a fresh solver of kind over the current scene.
func (s *Session) rebuild(kind algorithms.Kind) error {
	opts := append([]core.Option{
		core.WithLogger(s.opts.Logger),
		core.WithSeed(s.seed),
	}, s.opts.SolverOptions...)

	sol, err := algorithms.New(kind, s.grid, s.start, s.goal, opts...)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.solver = sol
	s.kind = kind
	s.restart()

	return nil
}

// gridChanged rebinds the (same) grid so the solver resets.
func (s *Session) gridChanged() {
	s.solver.SetGrid(s.grid)
	s.restart()
}

func (s *Session) restart() {
	s.iterations = 0
	s.m.resets.Inc()
}

func (s *Session) result(status Status, d time.Duration) Result {
	res := Result{
		Algorithm: s.kind,
		Status:    status,
		Steps:     s.iterations,
		Explored:  s.countExplored(),
		Cost:      math.Inf(1),
		Duration:  d,
	}
	if status == Found {
		res.Path = core.Reverse(s.solver.ReconstructPath())
		res.Cost = core.PathCost(res.Path)
	}

	return res
}

func (s *Session) countExplored() int {
	n := 0
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			if s.solver.HasExplored(gridgraph.State{X: x, Y: y}) {
				n++
			}
		}
	}

	return n
}

func (s *Session) observe(res Result) {
	alg := s.kind.String()
	s.m.outcomes.WithLabelValues(alg, res.Status.String()).Inc()
	s.m.explored.WithLabelValues(alg).Observe(float64(res.Explored))
	s.m.duration.WithLabelValues(alg).Observe(res.Duration.Seconds())
}
