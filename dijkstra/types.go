package dijkstra

import "github.com/katalvlaran/stepsearch/gridgraph"

// nodeItem represents a state and its tentative distance from the start.
// It is stored in the priority queue to order states by increasing distance.
type nodeItem struct {
	id   gridgraph.State // grid state
	dist float64         // distance from start when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by State order.
// A shorter route to an already queued state pushes a fresh entry; the
// outdated one is skipped when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop arranges for it to be
// the minimum.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
