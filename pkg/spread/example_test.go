package spread_test

import (
	"fmt"

	"github.com/anjulbhatia/Small-World-Simulation/pkg/network"
	"github.com/anjulbhatia/Small-World-Simulation/pkg/spread"
)

func ExampleNewStream() {
	// Watch a message travel around a ring of 8 nodes, one discovery
	// per Next call.
	g, _ := network.Build(network.Config{Population: 8, Degree: 2, Rewire: 0}, network.NewRand(1))

	stream, _ := spread.NewStream(g, 0)
	for {
		snap, ok := stream.Next()
		if !ok {
			break
		}
		fmt.Printf("node %d at depth %d (%d reached)\n", snap.Node, snap.Depth, len(snap.Visited))
	}
	// Output:
	// node 0 at depth 0 (1 reached)
	// node 1 at depth 1 (2 reached)
	// node 7 at depth 1 (3 reached)
	// node 2 at depth 2 (4 reached)
	// node 6 at depth 2 (5 reached)
	// node 3 at depth 3 (6 reached)
	// node 5 at depth 3 (7 reached)
	// node 4 at depth 4 (8 reached)
}

func ExampleHistogram() {
	g, _ := network.Build(network.Config{Population: 8, Degree: 2, Rewire: 0}, network.NewRand(1))

	reach, _ := spread.Histogram(g, 0)
	for _, d := range reach.Depths() {
		fmt.Printf("depth %d: %d\n", d, reach.Count(d))
	}
	fmt.Println("cumulative:", reach.Cumulative())
	// Output:
	// depth 0: 1
	// depth 1: 2
	// depth 2: 2
	// depth 3: 2
	// depth 4: 1
	// cumulative: [1 3 5 7 8]
}
