package core

import (
	"math"

	"github.com/katalvlaran/stepsearch/gridgraph"
)

// CostMap maps states to a cost. Absent states read as +Inf, so callers
// never have to distinguish "unmapped" from "unreachable".
type CostMap map[gridgraph.State]float64

// Get returns the cost of s, or +Inf if s was never assigned.
func (m CostMap) Get(s gridgraph.State) float64 {
	if c, ok := m[s]; ok {
		return c
	}

	return math.Inf(1)
}

// ReconstructPath walks prev from goal until it reaches a state with no
// predecessor and returns the visited states in goal-to-start order.
// If goal was never reached the result is just [goal]; chains are assumed
// acyclic, which holds for any map built by relaxation.
func ReconstructPath(prev map[gridgraph.State]gridgraph.State, goal gridgraph.State) []gridgraph.State {
	path := []gridgraph.State{goal}
	for cur := goal; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}

	return path
}

// Reverse returns a reversed copy of path, turning a goal-to-start route
// into start-to-goal order.
func Reverse(path []gridgraph.State) []gridgraph.State {
	out := make([]gridgraph.State, len(path))
	for i, s := range path {
		out[len(path)-1-i] = s
	}

	return out
}

// PathCost sums the Euclidean edge weights along path.
func PathCost(path []gridgraph.State) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += gridgraph.Distance(path[i-1], path[i])
	}

	return total
}
