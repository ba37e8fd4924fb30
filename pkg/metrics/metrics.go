package metrics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

// ErrEmptyGraph is returned when a summary is requested for a nil graph or
// a graph with no nodes.
var ErrEmptyGraph = errors.New("empty graph")

// Graph is the read access the metrics need. *network.Graph satisfies it;
// the contract matches [spread.Graph] plus adjacency membership.
type Graph interface {
	// Order returns the number of nodes.
	Order() int
	// Neighbors returns the ids adjacent to id, ascending.
	Neighbors(id int) []int
	// HasEdge reports whether an edge connects u and v.
	HasEdge(u, v int) bool
}

// Summary collects the structural metrics of one graph.
type Summary struct {
	Order        int     `json:"order"`
	Edges        int     `json:"edges"`
	DegreeMin    int     `json:"degree_min"`
	DegreeMax    int     `json:"degree_max"`
	DegreeMean   float64 `json:"degree_mean"`
	DegreeMedian float64 `json:"degree_median"`
	DegreeStdDev float64 `json:"degree_std_dev"`

	// AveragePathLength is the mean shortest-path distance over ordered
	// pairs that can reach each other.
	AveragePathLength float64 `json:"average_path_length"`
	// Clustering is the mean local clustering coefficient.
	Clustering float64 `json:"clustering"`
	// Reachability is the fraction of ordered node pairs connected by some
	// path; 1 for a connected graph.
	Reachability float64 `json:"reachability"`
}

// AveragePathLength returns the mean shortest-path distance over all
// ordered pairs of distinct nodes that can reach each other. Pairs in
// different components are left out of the average; a graph with no such
// pairs at all reports 0.
func AveragePathLength(g Graph) (float64, error) {
	sum, pairs, err := pathSums(g)
	if err != nil {
		return 0, err
	}
	if pairs == 0 {
		return 0, nil
	}
	return sum / pairs, nil
}

// AverageClustering returns the mean local clustering coefficient: the
// fraction of each node's neighbor pairs that are themselves connected,
// averaged over all nodes. Nodes with fewer than two neighbors contribute
// a coefficient of 0, following the usual convention.
func AverageClustering(g Graph) float64 {
	if g == nil || g.Order() == 0 {
		return 0
	}
	var total float64
	for v := range g.Order() {
		total += localClustering(g, v)
	}
	return total / float64(g.Order())
}

// Summarize computes the full [Summary] for a graph.
// Returns [ErrEmptyGraph] if the graph is nil or has no nodes.
func Summarize(g Graph) (Summary, error) {
	if g == nil || g.Order() == 0 {
		return Summary{}, ErrEmptyGraph
	}

	n := g.Order()
	degrees := make([]int, n)
	data := make(stats.Float64Data, n)
	degreeSum := 0
	for v := range n {
		degrees[v] = len(g.Neighbors(v))
		data[v] = float64(degrees[v])
		degreeSum += degrees[v]
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("degree mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("degree median: %w", err)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("degree standard deviation: %w", err)
	}

	sum, pairs, err := pathSums(g)
	if err != nil {
		return Summary{}, err
	}
	avgPath := 0.0
	if pairs > 0 {
		avgPath = sum / pairs
	}
	reachability := 1.0
	if n > 1 {
		reachability = pairs / float64(n*(n-1))
	}

	return Summary{
		Order:             n,
		Edges:             degreeSum / 2,
		DegreeMin:         slices.Min(degrees),
		DegreeMax:         slices.Max(degrees),
		DegreeMean:        mean,
		DegreeMedian:      median,
		DegreeStdDev:      stdDev,
		AveragePathLength: avgPath,
		Clustering:        AverageClustering(g),
		Reachability:      reachability,
	}, nil
}

// pathSums accumulates shortest-path distances via one breadth-first
// traversal per node: sum of all pairwise distances and the number of
// ordered pairs that are connected.
func pathSums(g Graph) (sum, pairs float64, err error) {
	if g == nil || g.Order() == 0 {
		return 0, 0, ErrEmptyGraph
	}
	for v := range g.Order() {
		reach, err := spread.Histogram(g, v)
		if err != nil {
			return 0, 0, fmt.Errorf("traversal from %d: %w", v, err)
		}
		for _, d := range reach.Depths() {
			if d == 0 {
				continue
			}
			sum += float64(d * reach.Count(d))
			pairs += float64(reach.Count(d))
		}
	}
	return sum, pairs, nil
}

func localClustering(g Graph, v int) float64 {
	neighbors := g.Neighbors(v)
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(neighbors[i], neighbors[j]) {
				links++
			}
		}
	}
	return 2 * float64(links) / float64(k*(k-1))
}
