package algorithms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/dijkstra"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

func TestParseKind(t *testing.T) {
	cases := map[string]algorithms.Kind{
		"astar":      algorithms.AStar,
		"A*":         algorithms.AStar,
		" Dijkstra ": algorithms.Dijkstra,
		"randomwalk": algorithms.RandomWalk,
		"random":     algorithms.RandomWalk,
		"BFS":        algorithms.BFS,
	}
	for in, want := range cases {
		got, err := algorithms.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := algorithms.ParseKind("greedy")
	require.ErrorIs(t, err, algorithms.ErrUnknownKind)
}

func TestKindString(t *testing.T) {
	for _, k := range algorithms.Kinds() {
		back, err := algorithms.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	assert.Equal(t, "Kind(9)", algorithms.Kind(9).String())
}

func TestNew_Errors(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	_, err := algorithms.New(algorithms.Kind(9), g, gridgraph.State{}, gridgraph.State{})
	require.ErrorIs(t, err, algorithms.ErrUnknownKind)

	for _, k := range algorithms.Kinds() {
		_, err = algorithms.New(k, nil, gridgraph.State{}, gridgraph.State{})
		require.ErrorIs(t, err, core.ErrNilGrid, k.String())

		_, err = algorithms.New(k, g, gridgraph.State{}, gridgraph.State{X: 3})
		require.ErrorIs(t, err, core.ErrOutOfBounds, k.String())
	}
}

func TestRun_StepCap(t *testing.T) {
	g, _ := gridgraph.New(10, 10)
	s, err := algorithms.New(algorithms.Dijkstra, g, gridgraph.State{}, gridgraph.State{X: 9, Y: 9})
	require.NoError(t, err)

	require.False(t, algorithms.Run(s, 5))
	require.Equal(t, 5, s.Steps())
	require.True(t, algorithms.Run(s, 0))
}

// TestOptimalAgreement: A* path cost equals the Dijkstra distance, and both
// agree on reachability.
func TestOptimalAgreement(t *testing.T) {
	scenes := []struct {
		name  string
		build func(g *gridgraph.Grid)
		goal  gridgraph.State
	}{
		{"open", func(*gridgraph.Grid) {}, gridgraph.State{X: 11, Y: 7}},
		{"wall with gap", func(g *gridgraph.Grid) {
			g.BlockLine(gridgraph.State{X: 6, Y: 0}, 0, 1, 10)
		}, gridgraph.State{X: 11, Y: 0}},
		{"maze", func(g *gridgraph.Grid) {
			g.BlockLine(gridgraph.State{X: 3, Y: 0}, 0, 1, 9)
			g.BlockLine(gridgraph.State{X: 7, Y: 3}, 0, 1, 9)
			g.BlockLine(gridgraph.State{X: 9, Y: 0}, 0, 1, 6)
		}, gridgraph.State{X: 11, Y: 11}},
		{"sealed", func(g *gridgraph.Grid) {
			g.BlockLine(gridgraph.State{X: 6, Y: 0}, 0, 1, 12)
		}, gridgraph.State{X: 11, Y: 5}},
	}

	for _, sc := range scenes {
		t.Run(sc.name, func(t *testing.T) {
			g, _ := gridgraph.New(12, 12)
			sc.build(g)
			start := gridgraph.State{X: 0, Y: 0}

			a, err := algorithms.New(algorithms.AStar, g, start, sc.goal)
			require.NoError(t, err)
			d, err := dijkstra.New(g, start, sc.goal)
			require.NoError(t, err)

			aFound := algorithms.Run(a, 0)
			dFound := algorithms.Run(d, 0)
			require.Equal(t, dFound, aFound)
			require.Equal(t, g.Reachable(start, sc.goal), aFound)

			if !aFound {
				require.True(t, math.IsInf(d.Distance(sc.goal), 1))
				return
			}
			require.InDelta(t, d.Distance(sc.goal), core.PathCost(a.ReconstructPath()), 1e-9)
			require.LessOrEqual(t, a.Steps(), d.Steps(), "A* never finalises more states than Dijkstra here")
		})
	}
}
