package dp

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Inf is the distance of a vertex not reachable from the source.
const Inf int64 = math.MaxInt64

// BellmanFord computes single-source shortest paths on g, allowing negative
// edge weights.
//
// The routine runs exactly |V|-1 relaxation passes over every edge followed by
// one detection pass. Each examined edge is a counted comparison reported on
// [u, v] with label "relax"; an improvement commits Cell(pass, v) with label
// "update", so the table rows are the distance vectors after each pass.
// An edge still improvable in the detection pass is highlighted with
// "negative-cycle" and sets NegativeCycle in the result; that is a property of
// the input, not an error. Undirected edges relax in both directions.
//
// Complexity: O(V·E) time, O(V²) memory for the pass history.
func BellmanFord(h *stepper.Handle, g *core.Graph, source int) (*BellmanFordResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dp: source %d: %w", source, core.ErrVertexNotFound)
	}

	// Snapshot the edge list in adjacency order so every pass sees the same sequence.
	n := g.VertexCount()
	var edges []core.Edge
	for u := 0; u < n; u++ {
		out, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		edges = append(edges, out...)
	}

	res := &BellmanFordResult{
		Dist:   make([]int64, n),
		Prev:   make([]int, n),
		Passes: make([][]int64, 1, n),
	}
	for v := range res.Dist {
		res.Dist[v], res.Prev[v] = Inf, -1
	}
	res.Dist[source] = 0
	res.Passes[0] = slices.Clone(res.Dist)

	// Relaxation passes.
	for pass := 1; pass < n; pass++ {
		for _, e := range edges {
			cand, ok := candidate(h, res.Dist, e)
			if !h.Checkpoint(relaxEvent(e, cand, res.Dist[e.To])) {
				return res, stepper.ErrCancelled
			}
			if !ok {
				continue
			}
			res.Dist[e.To], res.Prev[e.To] = cand, e.From
			upd := event.Cell(pass, e.To, cand)
			upd.Label = LabelUpdate
			if !h.Checkpoint(upd) {
				return res, stepper.ErrCancelled
			}
		}
		res.Passes = append(res.Passes, slices.Clone(res.Dist))
	}

	// Detection pass.
	for _, e := range edges {
		cand, ok := candidate(h, res.Dist, e)
		if !h.Checkpoint(relaxEvent(e, cand, res.Dist[e.To])) {
			return res, stepper.ErrCancelled
		}
		if !ok {
			continue
		}
		res.NegativeCycle = true
		mark := event.Event{
			Kind:    event.Highlight,
			Target:  event.Graph,
			Mark:    event.Pivot,
			Indices: []int{e.From, e.To},
			Label:   LabelNegativeCycle,
		}
		if !h.Checkpoint(mark) {
			return res, stepper.ErrCancelled
		}
	}

	return res, nil
}

// candidate counts one comparison and reports dist[From]+w when it beats dist[To].
func candidate(h *stepper.Handle, dist []int64, e core.Edge) (int64, bool) {
	h.AddComparisons(1)
	if dist[e.From] == Inf {
		return Inf, false
	}
	c := dist[e.From] + e.Weight

	return c, c < dist[e.To]
}

// relaxEvent reports the examined edge with Values = [candidate, current];
// infinite values are reported as -1.
func relaxEvent(e core.Edge, cand, cur int64) event.Event {
	return event.Event{
		Kind:    event.Compare,
		Target:  event.Graph,
		Mark:    event.Comparing,
		Indices: []int{e.From, e.To},
		Values:  []int{finite(cand), finite(cur)},
		Label:   LabelRelax,
	}
}

func finite(d int64) int {
	if d == Inf {
		return -1
	}

	return int(d)
}
