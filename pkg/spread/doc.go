// Package spread traverses a graph breadth-first, modelling a message that
// starts at one node and reaches every neighbor of an informed node in the
// following step.
//
// # Overview
//
// The package offers the same traversal through two independent surfaces.
//
// [NewStream] returns a lazy, single-use discovery stream: every call to
// [Stream.Next] advances the traversal just far enough to find one newly
// discovered node and reports it as a [Snapshot], including the full visit
// set at that moment. The stream is driven entirely by the caller. It owns
// no goroutines and buffers no lookahead, so abandoning it halfway leaks
// nothing.
//
// [Histogram] runs the traversal to completion and aggregates it into a
// [Reach]: how many nodes were first discovered at each depth, plus the
// cumulative totals derived from it. It shares no state with a stream.
//
// Both surfaces visit neighbors in the order the graph reports them. The
// [Graph] contract requires ascending node id, so for any two runs over the
// same graph the discovery order, depths, and counts agree exactly.
//
// # Basic Usage
//
//	stream, err := spread.NewStream(g, 0)
//	if err != nil {
//		return err
//	}
//	for {
//		snap, ok := stream.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(snap.Node, snap.Depth, len(snap.Visited))
//	}
//
// The graph argument is any implementation of [Graph]; *network.Graph
// satisfies it directly.
//
// # Boundaries
//
// A traversal covers exactly the connected component of its start node and
// then stops: the stream reports exhaustion, the histogram counts only the
// reached nodes. Nodes outside the component are never visited.
//
// # Concurrency
//
// A Stream is single-use and not safe for concurrent calls. Distinct
// streams and histograms over the same graph are independent and may run
// in parallel, since they only read the graph.
package spread
