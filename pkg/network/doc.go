// Package network builds undirected small-world graphs using the
// Watts-Strogatz procedure.
//
// # Overview
//
// A Watts-Strogatz graph starts as a ring lattice: every node sits on a
// circle and connects to its nearest neighbors, half of them on each side.
// Each lattice edge is then rewired with a configurable probability, keeping
// its near endpoint and moving the far endpoint to a uniformly chosen node.
// Low rewiring probabilities produce the small-world regime: local
// clustering close to the lattice's, path lengths close to a random graph's.
//
// The two extremes are special cases. With [Config.Rewire] set to 0 the
// result is the exact ring lattice; with 1 every edge is rewired, which
// approximates an Erdos-Renyi random graph while preserving the edge count.
//
// # Basic Usage
//
// Fill a [Config], seed a random source, and call [Build]:
//
//	g, err := network.Build(network.Config{
//		Population: 50,
//		Degree:     4,
//		Rewire:     0.1,
//	}, network.NewRand(42))
//
// [NewRand] is the project's canonical seeded source; any *rand.Rand works.
//
// Construction is deterministic for a given configuration and source: the
// same seed always yields the same graph. There is no fallback to global
// randomness, so a nil source is an error rather than a surprise.
//
// # Structure Guarantees
//
// Built graphs are always simple: no self-loops, no parallel edges. A
// rewiring step that cannot find a valid replacement endpoint keeps the
// lattice edge instead, so the edge count is always Population*Degree/2
// regardless of the rewiring probability. [Graph.Stats] reports how many
// edges were rewired, kept, or left in place for lack of a candidate.
//
// Graphs are immutable once built, and neighbor lists are sorted by node
// id, which gives every traversal over them a deterministic order.
package network
