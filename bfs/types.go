package bfs

import (
	"errors"

	"github.com/katalvlaran/stepsearch/gridgraph"
)

// ErrOptionViolation is returned when a depth limit is negative.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// queueItem pairs a state with its depth (moves from start).
type queueItem struct {
	state gridgraph.State
	depth int
}
