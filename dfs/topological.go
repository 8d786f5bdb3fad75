// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	h     *stepper.Handle
	state []int // visitation state: White, Gray, Black
	order []int // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g by
// reversing the DFS finish order. Roots are tried in ascending ID order.
// If g is nil, returns ErrGraphNil; if g is undirected, ErrNotDirected;
// if a back edge is found, ErrCycleDetected.
func TopologicalSort(h *stepper.Handle, g *core.Graph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	// 3. Initialize sorter state; all vertices start White
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		h:     h,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Mark as in-progress (Gray)
	t.state[id] = Gray
	if !t.h.Checkpoint(event.Visited(id, LabelVisit)) {
		return stepper.ErrCancelled
	}

	// 2. Explore each outgoing edge
	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		t.h.AddComparisons(1)
		if !t.h.Checkpoint(edgeEvent(e)) {
			return stepper.ErrCancelled
		}
		switch t.state[e.To] {
		case Gray:
			// back edge
			return fmt.Errorf("%w: %d->%d", ErrCycleDetected, id, e.To)
		case White:
			if err = t.visit(e.To); err != nil {
				return err
			}
		}
	}

	// 3. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)
	if !t.h.Checkpoint(finishEvent(id)) {
		return stepper.ErrCancelled
	}

	return nil
}
