package spread

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned by [NewStream] and [Histogram] when the
	// graph is nil or has no nodes.
	ErrEmptyGraph = errors.New("empty graph")

	// ErrStartNotFound is returned by [NewStream] and [Histogram] when the
	// start node is outside the graph's id range.
	ErrStartNotFound = errors.New("start node not found")
)

// Graph is the read access a traversal needs. Node ids are the contiguous
// range 0..Order()-1, and Neighbors must report adjacent ids in ascending
// order; that ordering is what makes every traversal deterministic.
//
// *network.Graph satisfies the interface.
type Graph interface {
	// Order returns the number of nodes.
	Order() int
	// Neighbors returns the ids adjacent to id, ascending.
	Neighbors(id int) []int
}

// Snapshot describes one discovery: the moment a node is first reached.
type Snapshot struct {
	// Node is the newly discovered node.
	Node int
	// Depth is the number of steps from the start node, 0 for the start
	// itself.
	Depth int
	// Visited holds every node discovered so far, in discovery order and
	// ending with Node. The slice belongs to the caller; later discoveries
	// never modify it.
	Visited []int
}

// queueItem pairs a discovered node with its depth while it waits for
// expansion.
type queueItem struct {
	node  int
	depth int
}

func validate(g Graph, start int) error {
	if g == nil || g.Order() == 0 {
		return ErrEmptyGraph
	}
	if start < 0 || start >= g.Order() {
		return fmt.Errorf("start node %d outside 0..%d: %w", start, g.Order()-1, ErrStartNotFound)
	}
	return nil
}
