package spread_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

func TestHistogramValidation(t *testing.T) {
	tests := []struct {
		name    string
		graph   spread.Graph
		start   int
		wantErr error
	}{
		{"nil graph", nil, 0, spread.ErrEmptyGraph},
		{"zero nodes", fakeGraph{}, 0, spread.ErrEmptyGraph},
		{"negative start", pathGraph, -1, spread.ErrStartNotFound},
		{"start past last id", pathGraph, 5, spread.ErrStartNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := spread.Histogram(tt.graph, tt.start); !errors.Is(err, tt.wantErr) {
				t.Errorf("Histogram() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHistogramRing(t *testing.T) {
	// On a plain ring of 8 the message walks one node in each direction
	// per step: 1, 2, 2, 2, 1.
	g := ringGraph(t, 8, 2)
	reach, err := spread.Histogram(g, 0)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}

	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(reach.Depths(), want) {
		t.Errorf("Depths() = %v, want %v", reach.Depths(), want)
	}
	wantCounts := []int{1, 2, 2, 2, 1}
	for d, want := range wantCounts {
		if got := reach.Count(d); got != want {
			t.Errorf("Count(%d) = %d, want %d", d, got, want)
		}
	}
	if got := reach.Total(); got != 8 {
		t.Errorf("Total() = %d, want 8", got)
	}
	if got := reach.MaxDepth(); got != 4 {
		t.Errorf("MaxDepth() = %d, want 4", got)
	}
	if want := []int{1, 3, 5, 7, 8}; !slices.Equal(reach.Cumulative(), want) {
		t.Errorf("Cumulative() = %v, want %v", reach.Cumulative(), want)
	}
}

func TestHistogramLoneNode(t *testing.T) {
	reach, err := spread.Histogram(loneGraph, 0)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}

	if want := []int{0}; !slices.Equal(reach.Depths(), want) {
		t.Errorf("Depths() = %v, want %v", reach.Depths(), want)
	}
	if got := reach.Total(); got != 1 {
		t.Errorf("Total() = %d, want 1", got)
	}
	if got := reach.MaxDepth(); got != 0 {
		t.Errorf("MaxDepth() = %d, want 0", got)
	}
	if want := []int{1}; !slices.Equal(reach.Cumulative(), want) {
		t.Errorf("Cumulative() = %v, want %v", reach.Cumulative(), want)
	}
}

func TestHistogramComponentBoundary(t *testing.T) {
	reach, err := spread.Histogram(splitGraph, 0)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}
	if got := reach.Total(); got != 3 {
		t.Errorf("Total() from triangle = %d, want 3", got)
	}
	if got := reach.Count(1); got != 2 {
		t.Errorf("Count(1) = %d, want 2", got)
	}

	reach, err = spread.Histogram(splitGraph, 3)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}
	if got := reach.Total(); got != 2 {
		t.Errorf("Total() from pair = %d, want 2", got)
	}
}

func TestHistogramMissingDepth(t *testing.T) {
	reach, err := spread.Histogram(pathGraph, 0)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}
	for _, d := range []int{-1, 5, 99} {
		if got := reach.Count(d); got != 0 {
			t.Errorf("Count(%d) = %d, want 0", d, got)
		}
	}
}

func TestHistogramDepthsContiguous(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.5, 1} {
		g, err := network.Build(network.Config{Population: 60, Degree: 4, Rewire: p}, network.NewRand(9))
		if err != nil {
			t.Fatalf("Build(p=%g) error: %v", p, err)
		}
		reach, err := spread.Histogram(g, 0)
		if err != nil {
			t.Fatalf("Histogram(p=%g) error: %v", p, err)
		}

		for i, d := range reach.Depths() {
			if d != i {
				t.Fatalf("p=%g: Depths()[%d] = %d, depths must be contiguous from 0", p, i, d)
			}
		}
		if last := reach.Cumulative()[len(reach.Cumulative())-1]; last != reach.Total() {
			t.Errorf("p=%g: last cumulative = %d, want Total() = %d", p, last, reach.Total())
		}
	}
}

func TestHistogramAgreesWithStream(t *testing.T) {
	// The lazy stream and the one-shot histogram are independent code
	// paths over the same traversal; their view of the spread must match
	// exactly.
	g, err := network.Build(network.Config{Population: 30, Degree: 4, Rewire: 0.2}, network.NewRand(33))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	s, err := spread.NewStream(g, 0)
	if err != nil {
		t.Fatalf("NewStream() error: %v", err)
	}
	streamed := drain(t, s)

	reach, err := spread.Histogram(g, 0)
	if err != nil {
		t.Fatalf("Histogram() error: %v", err)
	}

	if got := reach.Total(); got != len(streamed) {
		t.Fatalf("Total() = %d, stream discovered %d", got, len(streamed))
	}

	counts := map[int]int{}
	for _, snap := range streamed {
		counts[snap.Depth]++
	}
	if len(counts) != len(reach.Depths()) {
		t.Fatalf("stream saw %d depths, histogram %d", len(counts), len(reach.Depths()))
	}
	for d, want := range counts {
		if got := reach.Count(d); got != want {
			t.Errorf("Count(%d) = %d, stream saw %d", d, got, want)
		}
	}
}

func TestHistogramDeterministic(t *testing.T) {
	cfg := network.Config{Population: 50, Degree: 6, Rewire: 0.3}

	build := func(seed uint64) *spread.Reach {
		g, err := network.Build(cfg, network.NewRand(seed))
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		reach, err := spread.Histogram(g, 0)
		if err != nil {
			t.Fatalf("Histogram() error: %v", err)
		}
		return reach
	}

	a, b := build(7), build(7)
	if !slices.Equal(a.Depths(), b.Depths()) {
		t.Errorf("same seed, different depths: %v vs %v", a.Depths(), b.Depths())
	}
	if !slices.Equal(a.Cumulative(), b.Cumulative()) {
		t.Errorf("same seed, different cumulative series: %v vs %v", a.Cumulative(), b.Cumulative())
	}
}
