package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// Graph is an imported graph: plain sorted adjacency with the read access
// the traversal and metrics layers need. Unlike a builder graph it makes
// no structural promises beyond simplicity, which [ReadGraphJSON] enforces.
type Graph struct {
	adj   [][]int
	edges int
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

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

// ReadGraphJSON decodes a JSON graph from r.
//
// The input must be a JSON object with a "nodes" count and an "edges"
// array:
//
//	{
//	  "nodes": 4,
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}]
//	}
//
// Node ids are implicit: the contiguous range 0..nodes-1. ReadGraphJSON
// returns an error if the JSON is malformed, an edge endpoint falls
// outside that range, an edge is a self-loop, or the same edge appears
// twice. The returned graph is independent of r; ReadGraphJSON does not
// close r.
func ReadGraphJSON(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Nodes < 0 {
		return nil, fmt.Errorf("node count %d must not be negative", data.Nodes)
	}

	adj := make([][]int, data.Nodes)
	for _, e := range data.Edges {
		if e.U < 0 || e.U >= data.Nodes || e.V < 0 || e.V >= data.Nodes {
			return nil, fmt.Errorf("edge %d-%d: endpoint outside 0..%d", e.U, e.V, data.Nodes-1)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("edge %d-%d: self-loops not allowed", e.U, e.V)
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	for id := range adj {
		slices.Sort(adj[id])
		for i := 1; i < len(adj[id]); i++ {
			if adj[id][i] == adj[id][i-1] {
				return nil, fmt.Errorf("edge %d-%d: duplicate edge", id, adj[id][i])
			}
		}
	}

	return &Graph{adj: adj, edges: len(data.Edges)}, nil
}

// ImportGraphJSON reads a JSON file at path and returns the decoded graph.
// It returns the same validation errors as [ReadGraphJSON], wrapped with
// the file path for context.
func ImportGraphJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadGraphJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
