package spread

import (
	"slices"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

type streamState int

const (
	// statePending: constructed, nothing discovered yet.
	statePending streamState = iota
	// stateExpanding: the traversal is underway.
	stateExpanding
	// stateExhausted: the component is fully discovered. Terminal.
	stateExhausted
)

// Stream is a lazy breadth-first discovery stream. Each [Stream.Next] call
// advances the traversal until one new node is discovered and returns its
// [Snapshot]; work happens only inside Next, never in the background.
//
// A Stream is single-use: once exhausted it stays exhausted.
type Stream struct {
	graph    Graph
	start    int
	state    streamState
	frontier *arrayqueue.Queue // discovered nodes awaiting expansion
	seen     []bool
	visited  []int // discovery order so far

	// expansion cursor over the neighbors of the node being expanded
	neighbors []int
	depth     int
	cursor    int
}

// NewStream prepares a discovery stream from the start node. No traversal
// work happens until the first [Stream.Next] call. Returns [ErrEmptyGraph]
// or [ErrStartNotFound] for unusable arguments.
func NewStream(g Graph, start int) (*Stream, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}
	return &Stream{
		graph:    g,
		start:    start,
		frontier: arrayqueue.New(),
		seen:     make([]bool, g.Order()),
	}, nil
}

// Next returns the snapshot of the next newly discovered node, or a zero
// snapshot and false once the start node's component is fully discovered.
// The first call always yields the start node itself at depth 0.
//
// Discoveries come out in breadth-first order: all nodes at depth d before
// any node at depth d+1, and neighbors of one node in ascending id order.
func (s *Stream) Next() (Snapshot, bool) {
	switch s.state {
	case stateExhausted:
		return Snapshot{}, false
	case statePending:
		s.state = stateExpanding
		s.discover(s.start, 0)
		return s.snapshot(s.start, 0), true
	}

	for {
		for s.cursor < len(s.neighbors) {
			v := s.neighbors[s.cursor]
			s.cursor++
			if !s.seen[v] {
				s.discover(v, s.depth+1)
				return s.snapshot(v, s.depth+1), true
			}
		}

		item, ok := s.frontier.Dequeue()
		if !ok {
			s.state = stateExhausted
			return Snapshot{}, false
		}
		next := item.(queueItem)
		s.neighbors = s.graph.Neighbors(next.node)
		s.depth = next.depth
		s.cursor = 0
	}
}

func (s *Stream) discover(node, depth int) {
	s.seen[node] = true
	s.visited = append(s.visited, node)
	s.frontier.Enqueue(queueItem{node: node, depth: depth})
}

func (s *Stream) snapshot(node, depth int) Snapshot {
	return Snapshot{Node: node, Depth: depth, Visited: slices.Clone(s.visited)}
}
