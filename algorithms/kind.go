package algorithms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when an algorithm name or Kind is not registered.
var ErrUnknownKind = errors.New("algorithms: unknown algorithm")

// Kind identifies a search algorithm.
type Kind int

const (
	AStar Kind = iota
	Dijkstra
	RandomWalk
	BFS
)

var kindNames = [...]string{
	AStar:      "astar",
	Dijkstra:   "dijkstra",
	RandomWalk: "randomwalk",
	BFS:        "bfs",
}

// String returns the lower-case name used on the command line and as a
// metrics label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every registered algorithm in declaration order.
func Kinds() []Kind {
	return []Kind{AStar, Dijkstra, RandomWalk, BFS}
}

// ParseKind resolves a name case-insensitively. "a*" and "random" are
// accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	case "randomwalk", "random":
		return RandomWalk, nil
	case "bfs", "breadth-first":
		return BFS, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
