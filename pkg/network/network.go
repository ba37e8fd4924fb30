package network

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidParameter is returned by [Build] and [Config.Validate] when a
	// configuration value is out of range. The wrapped message names the
	// offending field and the value that was rejected.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrRandSourceRequired is returned by [Build] when the random source is
	// nil. Construction is deterministic with respect to the caller's source,
	// so there is no silent fallback to global randomness.
	ErrRandSourceRequired = errors.New("random source required")
)

// Config holds the Watts-Strogatz construction parameters.
//
// Population is the number of nodes. Degree is the ring-lattice degree:
// every node starts connected to its Degree/2 nearest neighbors on each
// side, so it must be even, at least 2, and smaller than Population.
// Rewire is the per-edge rewiring probability in [0, 1].
type Config struct {
	Population int     `json:"population" toml:"population"`
	Degree     int     `json:"degree" toml:"degree"`
	Rewire     float64 `json:"rewire" toml:"rewire"`
}

// Validate checks the configuration and returns an [ErrInvalidParameter]
// wrapped with the name of the first offending field, or nil if the
// configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.Population < 4:
		return invalidParam("population must be at least 4, got %d", c.Population)
	case c.Degree < 2:
		return invalidParam("degree must be at least 2, got %d", c.Degree)
	case c.Degree%2 != 0:
		return invalidParam("degree must be even, got %d", c.Degree)
	case c.Degree >= c.Population:
		return invalidParam("degree must be smaller than population, got degree %d for population %d", c.Degree, c.Population)
	case c.Rewire < 0 || c.Rewire > 1:
		return invalidParam("rewire probability must be within [0, 1], got %g", c.Rewire)
	}
	return nil
}

func invalidParam(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidParameter)...)
}

// BuildStats summarizes what the rewiring phase did to the ring lattice.
// The three counters partition the lattice edges, so they always sum to
// Population*Degree/2.
type BuildStats struct {
	// Rewired counts edges whose far endpoint was moved to a new node.
	Rewired int `json:"rewired"`
	// Kept counts edges the probability draw left untouched.
	Kept int `json:"kept"`
	// GaveUp counts edges selected for rewiring for which no valid
	// replacement endpoint was found, so the lattice edge stayed in place.
	GaveUp int `json:"gave_up"`
}

// Edge is an undirected edge between two node ids, normalized so U < V.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Graph is an undirected simple graph over nodes 0..Order()-1.
// Graphs are immutable after [Build] and safe for concurrent reads.
type Graph struct {
	adj   [][]int // per-node neighbor ids, sorted ascending
	edges int
	cfg   Config
	stats BuildStats
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of neighbors of the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) Degree(id int) int {
	if id < 0 || id >= len(g.adj) {
		return 0
	}
	return len(g.adj[id])
}

// Neighbors returns the node's neighbor ids in ascending order.
// Returns nil if the node doesn't exist. The returned slice should not be
// modified - use it as a read-only view.
func (g *Graph) Neighbors(id int) []int {
	if id < 0 || id >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}

// HasEdge reports whether an edge connects u and v.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[u], v)
	return found
}

// Edges returns every edge exactly once, normalized to U < V and ordered
// by U first and V second. The slice is freshly allocated on each call.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for u, neighbors := range g.adj {
		for _, v := range neighbors {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

// Config returns the configuration the graph was built from.
func (g *Graph) Config() Config { return g.cfg }

// Stats returns the rewiring statistics recorded during construction.
func (g *Graph) Stats() BuildStats { return g.stats }
