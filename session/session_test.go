package session_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/dijkstra"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/session"
)

var quiet = session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func TestNew_Errors(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Width = 0
	_, err := session.New(cfg, quiet)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	cfg = session.DefaultConfig()
	cfg.MaxSteps = -1
	_, err = session.New(cfg, quiet)
	require.ErrorIs(t, err, session.ErrInvalidConfig)

	cfg = session.DefaultConfig()
	cfg.Goal = gridgraph.State{X: 100, Y: 0}
	_, err = session.New(cfg, quiet)
	require.ErrorIs(t, err, core.ErrOutOfBounds)

	cfg = session.DefaultConfig()
	cfg.Algorithm = algorithms.Kind(7)
	_, err = session.New(cfg, quiet)
	require.ErrorIs(t, err, algorithms.ErrUnknownKind)
}

// ------------------------------------------------------------------------
// Demo scene
// ------------------------------------------------------------------------

type DemoSuite struct {
	suite.Suite
	s *session.Session
}

func (ds *DemoSuite) SetupTest() {
	s, err := session.New(session.DefaultConfig(), quiet)
	ds.Require().NoError(err)
	s.ApplyScene(session.DemoScene)
	ds.s = s
}

// optimum computes the reference distance with a standalone Dijkstra.
func (ds *DemoSuite) optimum() float64 {
	d, err := dijkstra.New(ds.s.Grid(), ds.s.Start(), ds.s.Goal())
	ds.Require().NoError(err)
	ds.Require().True(algorithms.Run(d, 0))

	return d.Distance(ds.s.Goal())
}

func (ds *DemoSuite) TestSceneLayout() {
	g := ds.s.Grid()
	ds.True(g.ObstacleAt(gridgraph.State{X: 2, Y: 20}))
	ds.True(g.ObstacleAt(gridgraph.State{X: 3, Y: 4}))
	ds.False(g.ObstacleAt(gridgraph.State{X: 4, Y: 4}))
	ds.True(g.ObstacleAt(gridgraph.State{X: 41, Y: 15}))
	ds.False(g.ObstacleAt(gridgraph.State{X: 42, Y: 15}))
	ds.True(g.ObstacleAt(gridgraph.State{X: 60, Y: 49}))
	ds.False(g.ObstacleAt(gridgraph.State{X: 60, Y: 50}))
	ds.Equal(100*100-1-4-30-30, g.FreeCells())
}

func (ds *DemoSuite) TestAStarFindsOptimalRoute() {
	res, err := ds.s.Run(context.Background())
	ds.Require().NoError(err)
	ds.Equal(session.Found, res.Status)
	ds.Equal(algorithms.AStar, res.Algorithm)
	ds.Equal(res.Steps, ds.s.Iterations())

	ds.Require().NotEmpty(res.Path)
	ds.Equal(ds.s.Start(), res.Path[0])
	ds.Equal(ds.s.Goal(), res.Path[len(res.Path)-1])
	for _, st := range res.Path {
		ds.False(ds.s.Grid().ObstacleAt(st), "path crosses obstacle at %v", st)
	}
	ds.InDelta(ds.optimum(), res.Cost, 1e-9)
}

func (ds *DemoSuite) TestDijkstraAgrees() {
	ds.Require().NoError(ds.s.UseAlgorithm(algorithms.Dijkstra))
	ds.Equal(0, ds.s.Iterations())

	res, err := ds.s.Run(context.Background())
	ds.Require().NoError(err)
	ds.Equal(session.Found, res.Status)
	ds.InDelta(ds.optimum(), res.Cost, 1e-9)
}

func TestDemoSuite(t *testing.T) {
	suite.Run(t, new(DemoSuite))
}

// ------------------------------------------------------------------------
// Edits
// ------------------------------------------------------------------------

func TestEditsReset(t *testing.T) {
	cfg := session.Config{Width: 10, Height: 10, Goal: gridgraph.State{X: 9, Y: 9}}
	s, err := session.New(cfg, quiet)
	require.NoError(t, err)

	advance := func() {
		for i := 0; i < 3; i++ {
			s.Tick()
		}
		require.Equal(t, 3, s.Iterations())
	}

	edits := map[string]func() error{
		"toggle": func() error {
			blocked, err := s.ToggleObstacle(gridgraph.State{X: 4, Y: 4})
			require.True(t, blocked)
			return err
		},
		"set":   func() error { return s.SetObstacle(gridgraph.State{X: 4, Y: 4}, false) },
		"start": func() error { return s.MoveStart(gridgraph.State{X: 1, Y: 1}) },
		"goal":  func() error { return s.MoveGoal(gridgraph.State{X: 8, Y: 9}) },
		"algo":  func() error { return s.UseAlgorithm(algorithms.Dijkstra) },
		"clear": func() error { s.ClearObstacles(); return nil },
	}
	for name, edit := range edits {
		advance()
		require.NoError(t, edit(), name)
		assert.Zero(t, s.Iterations(), name)
		assert.Zero(t, s.Solver().Steps(), name)
		assert.Equal(t, session.Running, s.Status(), name)
	}
	assert.Equal(t, gridgraph.State{X: 1, Y: 1}, s.Solver().Start())
	assert.Equal(t, gridgraph.State{X: 8, Y: 9}, s.Solver().Goal())
}

func TestEditsOutOfBounds(t *testing.T) {
	s, err := session.New(session.Config{Width: 5, Height: 5, Goal: gridgraph.State{X: 4, Y: 4}}, quiet)
	require.NoError(t, err)
	s.Tick()

	out := gridgraph.State{X: 5, Y: 0}
	_, err = s.ToggleObstacle(out)
	require.ErrorIs(t, err, core.ErrOutOfBounds)
	require.ErrorIs(t, s.SetObstacle(out, true), core.ErrOutOfBounds)
	require.ErrorIs(t, s.MoveStart(out), core.ErrOutOfBounds)
	require.ErrorIs(t, s.MoveGoal(gridgraph.State{X: 0, Y: -1}), core.ErrOutOfBounds)

	require.Equal(t, 1, s.Iterations(), "rejected edits do not reset")
	require.Equal(t, gridgraph.State{X: 4, Y: 4}, s.Goal())
}

func TestResize(t *testing.T) {
	s, err := session.New(session.DefaultConfig(), quiet)
	require.NoError(t, err)
	s.ApplyScene(session.DemoScene)
	s.Tick()

	require.NoError(t, s.Resize(50, 30))
	assert.Equal(t, 50, s.Grid().Width())
	assert.Equal(t, 30, s.Grid().Height())
	assert.Equal(t, gridgraph.State{X: 5, Y: 5}, s.Start())
	assert.Equal(t, gridgraph.State{X: 49, Y: 29}, s.Goal(), "goal clamped")
	assert.Equal(t, s.Goal(), s.Solver().Goal())
	assert.Same(t, s.Grid(), s.Solver().Grid())
	assert.Zero(t, s.Iterations())

	assert.True(t, s.Grid().ObstacleAt(gridgraph.State{X: 12, Y: 15}), "overlap carried over")
	assert.True(t, s.Grid().ObstacleAt(gridgraph.State{X: 41, Y: 15}))

	require.ErrorIs(t, s.Resize(0, 5), gridgraph.ErrEmptyGrid)
	assert.Equal(t, 50, s.Grid().Width(), "failed resize keeps the grid")
}

// ------------------------------------------------------------------------
// Termination
// ------------------------------------------------------------------------

func TestStepLimit(t *testing.T) {
	cfg := session.Config{
		Width: 100, Height: 100,
		Goal:      gridgraph.State{X: 99, Y: 99},
		Algorithm: algorithms.RandomWalk,
		MaxSteps:  10,
		Seed:      1,
	}
	s, err := session.New(cfg, quiet)
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.StepLimit, res.Status)
	require.Equal(t, 10, res.Steps)
	require.Nil(t, res.Path)
	require.True(t, math.IsInf(res.Cost, 1))

	require.Equal(t, session.StepLimit, s.Tick())
	require.Equal(t, 10, s.Iterations())
}

func TestRandomWalkFound(t *testing.T) {
	cfg := session.Config{
		Width: 5, Height: 5,
		Goal:      gridgraph.State{X: 4, Y: 4},
		Algorithm: algorithms.RandomWalk,
		MaxSteps:  100_000,
		Seed:      11,
	}
	s, err := session.New(cfg, quiet)
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.Found, res.Status)
	require.NotNil(t, res.Path)
	require.Empty(t, res.Path, "the walk keeps no route")
	require.Zero(t, res.Cost)
}

func TestExhausted(t *testing.T) {
	s, err := session.New(session.Config{Width: 8, Height: 8, Goal: gridgraph.State{X: 7, Y: 0}}, quiet)
	require.NoError(t, err)
	s.ApplyScene(func(g *gridgraph.Grid) {
		g.BlockLine(gridgraph.State{X: 4, Y: 0}, 0, 1, 8)
	})

	for _, k := range []algorithms.Kind{algorithms.AStar, algorithms.Dijkstra} {
		require.NoError(t, s.UseAlgorithm(k))
		res, err := s.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, session.Exhausted, res.Status, k.String())
		assert.Nil(t, res.Path, k.String())
		assert.Equal(t, 32, res.Explored, "%v explores exactly the left half", k)
	}
}

func TestRunCancelled(t *testing.T) {
	s, err := session.New(session.DefaultConfig(), quiet)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, session.Running, res.Status)
	require.Zero(t, res.Steps)

	res, err = s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.Found, res.Status)
}

// ------------------------------------------------------------------------
// Metrics and rendering
// ------------------------------------------------------------------------

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := session.New(session.Config{Width: 6, Height: 6, Goal: gridgraph.State{X: 5, Y: 5}},
		quiet, session.WithRegisterer(reg))
	require.NoError(t, err)

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.Found, res.Status)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	counters := map[string]float64{}
	samples := map[string]uint64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				counters[mf.GetName()] += c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				samples[mf.GetName()] += h.GetSampleCount()
			}
		}
	}
	assert.Equal(t, float64(res.Steps), counters["stepsearch_steps_total"])
	assert.Equal(t, 1.0, counters["stepsearch_runs_total"])
	assert.Equal(t, 1.0, counters["stepsearch_resets_total"], "construction resets once")
	assert.Equal(t, uint64(1), samples["stepsearch_run_explored_states"])
	assert.Equal(t, uint64(1), samples["stepsearch_run_duration_seconds"])
}

// gatherCounters sums every counter sample in reg by family name.
func gatherCounters(t *testing.T, reg prometheus.Gatherer) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	counters := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				counters[mf.GetName()] += c.GetValue()
			}
		}
	}

	return counters
}

// TestMetrics_SharedRegisterer: sessions built on one registerer share the
// collectors instead of failing on duplicate registration.
func TestMetrics_SharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := session.Config{Width: 6, Height: 6, Goal: gridgraph.State{X: 5, Y: 5}}

	first, err := session.New(cfg, quiet, session.WithRegisterer(reg))
	require.NoError(t, err)
	second, err := session.New(cfg, quiet, session.WithRegisterer(reg))
	require.NoError(t, err)

	r1, err := first.Run(context.Background())
	require.NoError(t, err)
	r2, err := second.Run(context.Background())
	require.NoError(t, err)

	counters := gatherCounters(t, reg)
	assert.Equal(t, float64(r1.Steps+r2.Steps), counters["stepsearch_steps_total"])
	assert.Equal(t, 2.0, counters["stepsearch_runs_total"])
	assert.Equal(t, 2.0, counters["stepsearch_resets_total"])
}

// TestMetrics_ConflictingCollector: a foreign collector under a session
// metric name is reported as an error, not a panic.
func TestMetrics_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stepsearch_resets_total",
		Help: "unrelated gauge",
	}))

	_, err := session.New(session.Config{Width: 3, Height: 3}, quiet, session.WithRegisterer(reg))
	require.Error(t, err)
	require.Contains(t, err.Error(), "register metrics")
}

func TestSnapshotRender(t *testing.T) {
	sn := session.Snapshot{
		Width: 4, Height: 3,
		Start:      gridgraph.State{X: 0, Y: 0},
		Goal:       gridgraph.State{X: 3, Y: 0},
		Algorithm:  algorithms.AStar,
		Status:     session.Found,
		Iterations: 5,
		Obstacles:  []gridgraph.State{{X: 1, Y: 0}, {X: 1, Y: 1}},
		Explored:   []gridgraph.State{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		Path:       []gridgraph.State{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, sn.Render(&buf))
	require.Equal(t, strings.Join([]string{
		"astar found iterations=5 explored=6",
		"S#.G",
		"*#*.",
		".*+.",
		"",
	}, "\n"), buf.String())
}

func TestSessionRender(t *testing.T) {
	s, err := session.New(session.Config{Width: 7, Height: 4, Goal: gridgraph.State{X: 6, Y: 3}}, quiet)
	require.NoError(t, err)
	_, err = s.Run(context.Background())
	require.NoError(t, err)

	sn := s.Snapshot()
	require.Equal(t, session.Found, sn.Status)
	require.Equal(t, s.Start(), sn.Path[0])
	require.Len(t, sn.Explored, s.Solver().Steps())

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "astar found"))
	require.Equal(t, byte('S'), lines[1][0])
	require.Equal(t, byte('G'), lines[4][6])
}
