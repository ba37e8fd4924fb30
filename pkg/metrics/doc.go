// Package metrics computes the structural quantities that locate a graph
// on the regular-to-random spectrum: characteristic path length, local
// clustering, and degree statistics.
//
// The small-world regime is exactly the combination of clustering close to
// a ring lattice's and path lengths close to a random graph's, so these
// numbers are how a rewired network is judged.
package metrics
