// Package export serializes built networks and whole comparison runs as
// JSON, and reads graph files back in for further analysis.
//
// A graph file holds the construction parameters plus the explicit edge
// list, so any tool can consume it without knowing the generator. A run
// file captures one comparison run end to end: the options, a fresh run id
// and timestamp, and each network's spread histogram, cumulative curve,
// and rewiring statistics.
//
// [ReadGraphJSON] returns a [Graph] rather than a builder graph: imported
// adjacency is arbitrary, so it only promises the read access the
// traversal and metrics layers need.
package export
