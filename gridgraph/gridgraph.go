package gridgraph

import (
	"fmt"
	"math"
)

// New constructs an obstacle-free w×h Grid.
// Returns ErrEmptyGrid if w or h is not positive.
// Complexity: O(W×H) time and memory.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}

	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// From2D builds a Grid from rows of obstacle flags, rows[y][x].
// The input is copied. Returns ErrEmptyGrid if rows has no rows or no
// columns, ErrNonRectangular if any row length differs.
func From2D(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether s lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid) InBounds(s State) bool {
	return s.X >= 0 && s.X < g.w && s.Y >= 0 && s.Y < g.h
}

// ObstacleAt reports whether s is occupied. s must be in bounds.
func (g *Grid) ObstacleAt(s State) bool {
	return g.cells[g.mustIndex(s)]
}

// SetObstacle marks or clears the obstacle at s. s must be in bounds.
// This is the only way occupancy changes.
func (g *Grid) SetObstacle(s State, blocked bool) {
	g.cells[g.mustIndex(s)] = blocked
}

// ToggleObstacle flips the occupancy of s and returns the new value.
func (g *Grid) ToggleObstacle(s State) bool {
	i := g.mustIndex(s)
	g.cells[i] = !g.cells[i]

	return g.cells[i]
}

// ClearObstacles resets every cell to unoccupied.
func (g *Grid) ClearObstacles() {
	clear(g.cells)
}

// BlockLine marks n cells as obstacles, starting at from and advancing by
// (dx,dy) each time. Cells falling outside the grid are skipped.
func (g *Grid) BlockLine(from State, dx, dy, n int) {
	for t := 0; t < n; t++ {
		s := State{X: from.X + t*dx, Y: from.Y + t*dy}
		if g.InBounds(s) {
			g.cells[g.Index(s)] = true
		}
	}
}

// NeighborsOf returns the in-bounds, unoccupied cells of the Moore
// neighbourhood of s, never s itself. The order is the fixed scan order of
// the 3×3 block, so tie-breaking solvers behave reproducibly.
// Complexity: O(1).
func (g *Grid) NeighborsOf(s State) []State {
	ns := make([]State, 0, len(moore))
	for _, d := range moore {
		n := State{X: s.X + d[0], Y: s.Y + d[1]}
		if g.InBounds(n) && !g.cells[g.Index(n)] {
			ns = append(ns, n)
		}
	}

	return ns
}

// Distance is the Euclidean distance between a and b, used as the edge
// weight between adjacent cells.
func (g *Grid) Distance(a, b State) float64 {
	return Distance(a, b)
}

// FreeCells counts unoccupied cells.
func (g *Grid) FreeCells() int {
	n := 0
	for _, blocked := range g.cells {
		if !blocked {
			n++
		}
	}

	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

// Resize returns a new w×h Grid carrying over the obstacles of the region
// both grids share. g itself is left untouched.
// Complexity: O(min(W,w)×min(H,h)).
func (g *Grid) Resize(w, h int) (*Grid, error) {
	r, err := New(w, h)
	if err != nil {
		return nil, err
	}
	cw, ch := min(g.w, w), min(g.h, h)
	for y := 0; y < ch; y++ {
		copy(r.cells[y*w:y*w+cw], g.cells[y*g.w:y*g.w+cw])
	}

	return r, nil
}

// Clamp returns the in-bounds state nearest to s.
func (g *Grid) Clamp(s State) State {
	return State{X: max(0, min(s.X, g.w-1)), Y: max(0, min(s.Y, g.h-1))}
}

// Index maps s to its row-major index y*W + x.
// Complexity: O(1).
func (g *Grid) Index(s State) int {
	return s.Y*g.w + s.X
}

// Coordinate converts a row-major index back to a State.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) State {
	return State{X: idx % g.w, Y: idx / g.w}
}

// mustIndex is Index guarded by InBounds; out-of-bounds access panics.
func (g *Grid) mustIndex(s State) int {
	if !g.InBounds(s) {
		panic(fmt.Sprintf("gridgraph: state %v out of bounds for %dx%d grid", s, g.w, g.h))
	}

	return g.Index(s)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b State) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Octile is the 8-connected lower bound on the cost from a to b when
// orthogonal steps cost 1 and diagonal steps cost √2:
// straight + diag·√2, with diag = min(|dx|,|dy|) and
// straight = |dx| + |dy| - 2·diag.
func Octile(a, b State) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	diag := min(dx, dy)
	straight := dx + dy - 2*diag

	return float64(straight) + float64(diag)*math.Sqrt2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
