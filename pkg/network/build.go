package network

import (
	"math/rand/v2"
	"slices"
)

// maxRewireDraws bounds the rejection sampling for a replacement endpoint.
// Dense neighborhoods can make valid candidates scarce; after this many
// draws the lattice edge is kept and counted in [BuildStats.GaveUp].
const maxRewireDraws = 32

// NewRand returns the deterministic random source the rest of the project
// uses for builds. The same seed always yields the same graph.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Build constructs a Watts-Strogatz graph from the configuration, drawing
// every random decision from rng. Returns [ErrInvalidParameter] if the
// configuration fails [Config.Validate], or [ErrRandSourceRequired] if rng
// is nil.
//
// The lattice edges are visited in a fixed order during rewiring: distance
// class first (nearest neighbors, then second-nearest, and so on), node id
// second. Together with a seeded source this makes construction fully
// reproducible.
func Build(cfg Config, rng *rand.Rand) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrRandSourceRequired
	}

	n, half := cfg.Population, cfg.Degree/2
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool, cfg.Degree)
	}

	// Ring lattice: node u connects to u+1..u+half, wrapping around.
	// Every edge has exactly one (distance, near-endpoint) representation
	// because half < n/2, so the rewiring scan below sees each edge once.
	for d := 1; d <= half; d++ {
		for u := range n {
			v := (u + d) % n
			adj[u][v] = true
			adj[v][u] = true
		}
	}

	var stats BuildStats
	for d := 1; d <= half; d++ {
		for u := range n {
			if rng.Float64() >= cfg.Rewire {
				stats.Kept++
				continue
			}
			w, ok := drawReplacement(rng, adj[u], u, n)
			if !ok {
				stats.GaveUp++
				continue
			}
			v := (u + d) % n
			delete(adj[u], v)
			delete(adj[v], u)
			adj[u][w] = true
			adj[w][u] = true
			stats.Rewired++
		}
	}

	g := &Graph{adj: make([][]int, n), cfg: cfg, stats: stats}
	for u, set := range adj {
		neighbors := make([]int, 0, len(set))
		for v := range set {
			neighbors = append(neighbors, v)
		}
		slices.Sort(neighbors)
		g.adj[u] = neighbors
		g.edges += len(neighbors)
	}
	g.edges /= 2
	return g, nil
}

// drawReplacement picks a node that is neither u itself nor already
// adjacent to u. The current far endpoint is still in taken when this runs,
// so a draw can never recreate the edge being rewired.
func drawReplacement(rng *rand.Rand, taken map[int]bool, u, n int) (int, bool) {
	if len(taken) >= n-1 {
		return 0, false
	}
	for range maxRewireDraws {
		w := rng.IntN(n)
		if w != u && !taken[w] {
			return w, true
		}
	}
	return 0, false
}
