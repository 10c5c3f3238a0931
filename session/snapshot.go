package session

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Render glyphs. Earlier entries win when a cell qualifies for several.
const (
	glyphGoal     = 'G'
	glyphStart    = 'S'
	glyphObstacle = '#'
	glyphPath     = '*'
	glyphExplored = '+'
	glyphFree     = '.'
)

// Snapshot is a copy of everything a front end needs to draw one frame.
// States are listed in row-major order.
type Snapshot struct {
	Width, Height int
	Start, Goal   gridgraph.State
	Algorithm     algorithms.Kind
	Status        Status
	Iterations    int

	Obstacles []gridgraph.State
	Explored  []gridgraph.State
	// Path runs start to goal; nil until the goal is found.
	Path []gridgraph.State
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	sn := Snapshot{
		Width:      s.grid.Width(),
		Height:     s.grid.Height(),
		Start:      s.start,
		Goal:       s.goal,
		Algorithm:  s.kind,
		Status:     s.Status(),
		Iterations: s.iterations,
	}
	for y := 0; y < sn.Height; y++ {
		for x := 0; x < sn.Width; x++ {
			st := gridgraph.State{X: x, Y: y}
			if s.grid.ObstacleAt(st) {
				sn.Obstacles = append(sn.Obstacles, st)
			}
			if s.solver.HasExplored(st) {
				sn.Explored = append(sn.Explored, st)
			}
		}
	}
	if sn.Status == Found {
		sn.Path = core.Reverse(s.solver.ReconstructPath())
	}

	return sn
}

// Render writes the current frame as ASCII; see Snapshot.Render.
func (s *Session) Render(w io.Writer) error {
	return s.Snapshot().Render(w)
}

// Render writes a one-line header followed by one text row per grid row:
//
//	G goal, S start, # obstacle, * path, + explored, . free
func (sn Snapshot) Render(w io.Writer) error {
	cells := make([]byte, sn.Width*sn.Height)
	for i := range cells {
		cells[i] = glyphFree
	}
	mark := func(states []gridgraph.State, glyph byte) {
		for _, st := range states {
			cells[st.Y*sn.Width+st.X] = glyph
		}
	}
	// lowest priority first, later marks overwrite
	mark(sn.Explored, glyphExplored)
	mark(sn.Path, glyphPath)
	mark(sn.Obstacles, glyphObstacle)
	mark([]gridgraph.State{sn.Start}, glyphStart)
	mark([]gridgraph.State{sn.Goal}, glyphGoal)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s iterations=%d explored=%d\n",
		sn.Algorithm, sn.Status, sn.Iterations, len(sn.Explored))
	for y := 0; y < sn.Height; y++ {
		bw.Write(cells[y*sn.Width : (y+1)*sn.Width])
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
