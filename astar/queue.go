package astar

import (
	"math"

	"github.com/katalvlaran/stepsearch/gridgraph"
)

// TieEpsilon is the f-score tolerance under which two open states count as
// tied and the heuristic decides. The comparison is not transitive across
// chains of near-ties; it assumes distinct f-scores differ by far more than
// TieEpsilon, which holds for sums of unit and √2 steps on practical grids.
const TieEpsilon = 1e-4

// openItem is one frontier entry. index is maintained by openQueue so the
// entry can be repositioned with heap.Fix after a decrease-key.
type openItem struct {
	state gridgraph.State
	g     float64
	f     float64
	h     float64
	index int
}

// openQueue is a min-heap of *openItem ordered by f, then h, then state.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if math.Abs(a.f-b.f) > TieEpsilon {
		return a.f < b.f
	}
	if math.Abs(a.h-b.h) > TieEpsilon {
		return a.h < b.h
	}

	return a.state.Less(b.state)
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
