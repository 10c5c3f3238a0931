package gridgraph

import "fmt"

// State is a discrete grid coordinate. Two states are equal iff both
// coordinates match, so State can be used directly as a map key.
type State struct {
	X, Y int
}

// Less orders states lexicographically by X, then Y. It exists for
// deterministic container ordering, never for search priority.
func (s State) Less(o State) bool {
	return s.X < o.X || (s.X == o.X && s.Y < o.Y)
}

// String renders the state as "(x,y)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// moore lists the Moore neighbourhood offsets in the row-major scan order of
// the 3×3 block around a cell: dx outer, dy inner, centre skipped.
var moore = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a W×H occupancy table. Width and Height are fixed for the life of
// the value; Resize builds a new Grid. cells[y*w+x] reports an obstacle.
type Grid struct {
	w, h  int
	cells []bool
}
