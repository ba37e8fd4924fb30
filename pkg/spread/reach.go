package spread

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/queues/arrayqueue"
)

// Reach aggregates a complete breadth-first traversal: how many nodes were
// first discovered at each depth. Depth keys keep insertion order, which
// for a breadth-first traversal is ascending from 0 without gaps.
type Reach struct {
	counts     *linkedhashmap.Map // depth -> node count
	depths     []int
	cumulative []int
	total      int
}

// Histogram runs a full traversal from the start node and returns its
// [Reach]. It is independent of any [Stream] over the same graph, but the
// two always agree: a node's depth here equals its snapshot depth there.
// Returns [ErrEmptyGraph] or [ErrStartNotFound] for unusable arguments.
func Histogram(g Graph, start int) (*Reach, error) {
	if err := validate(g, start); err != nil {
		return nil, err
	}

	counts := linkedhashmap.New()
	seen := make([]bool, g.Order())
	queue := arrayqueue.New()
	seen[start] = true
	queue.Enqueue(queueItem{node: start, depth: 0})

	total := 0
	for {
		item, ok := queue.Dequeue()
		if !ok {
			break
		}
		cur := item.(queueItem)

		if prev, found := counts.Get(cur.depth); found {
			counts.Put(cur.depth, prev.(int)+1)
		} else {
			counts.Put(cur.depth, 1)
		}
		total++

		for _, w := range g.Neighbors(cur.node) {
			if !seen[w] {
				seen[w] = true
				queue.Enqueue(queueItem{node: w, depth: cur.depth + 1})
			}
		}
	}

	r := &Reach{counts: counts, total: total}
	r.depths = make([]int, 0, counts.Size())
	r.cumulative = make([]int, 0, counts.Size())
	running := 0
	it := counts.Iterator()
	for it.Next() {
		running += it.Value().(int)
		r.depths = append(r.depths, it.Key().(int))
		r.cumulative = append(r.cumulative, running)
	}
	return r, nil
}

// Count returns how many nodes were first discovered at the depth, or 0
// for a depth the traversal never reached.
func (r *Reach) Count(depth int) int {
	if v, found := r.counts.Get(depth); found {
		return v.(int)
	}
	return 0
}

// Depths returns the recorded depths in insertion order, which is always
// 0, 1, 2, ... up to [Reach.MaxDepth] without gaps. The returned slice
// should not be modified - use it as a read-only view.
func (r *Reach) Depths() []int { return r.depths }

// Cumulative returns how many nodes were reached within each depth: element
// d is the number of nodes at depth <= d. The last element equals
// [Reach.Total]. The returned slice should not be modified - use it as a
// read-only view.
func (r *Reach) Cumulative() []int { return r.cumulative }

// Total returns the number of nodes the traversal reached, including the
// start node.
func (r *Reach) Total() int { return r.total }

// MaxDepth returns the largest recorded depth: the number of steps it took
// to reach the farthest node of the start node's component.
func (r *Reach) MaxDepth() int {
	if len(r.depths) == 0 {
		return 0
	}
	return r.depths[len(r.depths)-1]
}
