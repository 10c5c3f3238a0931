package gridgraph

// Components finds all 8-connected regions of free cells.
// Each component lists its states in BFS discovery order; components are
// ordered by the row-major index of their first cell.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Components() [][]State {
	seen := make([]bool, len(g.cells))
	var comps [][]State

	for i0, blocked := range g.cells {
		if blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []State

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, v := range g.NeighborsOf(u) {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Reachable reports whether b can be reached from a through free cells.
// a itself may be occupied; solvers still expand a blocked start, so only
// its neighbours must be free. An occupied b is never reachable.
// Time: O(W·H·8) worst case, stopping at b.
func (g *Grid) Reachable(a, b State) bool {
	if !g.InBounds(a) || !g.InBounds(b) || g.ObstacleAt(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	queue := []State{a}
	seen[g.Index(a)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.NeighborsOf(queue[qi]) {
			if v == b {
				return true
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
