package bfs

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Kahn returns a topological order of the directed graph g by in-degree
// counting: every vertex with in-degree zero is queued in ascending ID order,
// and visiting a vertex decrements the in-degree of each successor, queueing
// those that reach zero.
//
// Each decrement is a checkpoint (label "in-degree", Values = [remaining]).
// If vertices remain unvisited once the queue drains, the graph has a cycle;
// the partial order is returned with ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) memory.
func Kahn(h *stepper.Handle, g *core.Graph) ([]int, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// 2) Seed the queue with the sources.
	indeg := g.InDegrees()
	queue := make([]int, 0, len(indeg))
	for v, d := range indeg {
		if d == 0 {
			queue = append(queue, v)
			if !h.Checkpoint(indegEvent(v, 0)) {
				return nil, stepper.ErrCancelled
			}
		}
	}

	// 3) Peel vertices off in FIFO order.
	order := make([]int, 0, len(indeg))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		if !h.Checkpoint(event.Visited(v, LabelVisit)) {
			return order, stepper.ErrCancelled
		}

		edges, err := g.Neighbors(v)
		if err != nil {
			return order, err
		}
		for _, e := range edges {
			indeg[e.To]--
			h.AddComparisons(1)
			if !h.Checkpoint(indegEvent(e.To, indeg[e.To])) {
				return order, stepper.ErrCancelled
			}
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) < len(indeg) {
		return order, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(order), len(indeg))
	}

	return order, nil
}

func indegEvent(v, remaining int) event.Event {
	return event.Event{
		Kind:    event.Highlight,
		Target:  event.Graph,
		Mark:    event.Pivot,
		Indices: []int{v},
		Values:  []int{remaining},
		Label:   LabelIndeg,
	}
}
