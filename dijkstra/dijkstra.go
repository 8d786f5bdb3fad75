package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Dijkstra computes single-source shortest paths over g.
//
// The next vertex to settle is found by a linear scan over the unsettled
// vertices (ties go to the lower ID), which keeps the algorithm free of
// auxiliary heaps and its step sequence easy to follow. Suspension points:
//
//	settle - highlight [sorted] on the settled vertex, Values = [dist];
//	         the source is the first one
//	relax  - compare on [u, v] per examined edge (counted),
//	         Values = [candidate, current] (current is -1 when infinite)
//	update - commit on v when the candidate improves its distance
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra(h *stepper.Handle, g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	if e, ok := g.HasNegativeWeight(); ok {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	// 4) Initialize runner state and run main loop.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		h:       h,
		options: cfg,
		settled: make([]bool, n),
		res: &Result{
			Dist:    make([]int64, n),
			Prev:    make([]int, n),
			Settled: make([]int, 0, n),
		},
	}
	for v := 0; v < n; v++ {
		r.res.Dist[v], r.res.Prev[v] = Inf, -1
	}
	r.res.Dist[cfg.Source] = 0

	return r.res, r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	h       *stepper.Handle
	options Options // Configuration options (Source, thresholds).
	settled []bool  // Tracks if a vertex's distance is final.
	res     *Result
}

// next returns the unsettled vertex with the smallest finite distance, or -1.
func (r *runner) next() int {
	best := -1
	for v, d := range r.res.Dist {
		if r.settled[v] || d == Inf {
			continue
		}
		if best == -1 || d < r.res.Dist[best] {
			best = v
		}
	}

	return best
}

// process repeatedly settles the closest vertex and relaxes its outgoing
// edges until none is reachable or the closest exceeds MaxDistance.
func (r *runner) process() error {
	for {
		u := r.next()
		if u == -1 || r.res.Dist[u] > r.options.MaxDistance {
			return nil
		}

		r.settled[u] = true
		r.res.Settled = append(r.res.Settled, u)
		if !r.h.Checkpoint(event.Event{
			Kind:    event.Highlight,
			Target:  event.Graph,
			Mark:    event.Sorted,
			Indices: []int{u},
			Values:  []int{int(r.res.Dist[u])},
			Label:   LabelSettle,
		}) {
			return stepper.ErrCancelled
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines each edge leaving u and improves neighbor distances.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range edges {
		v := e.To
		if r.settled[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		cand := r.res.Dist[u] + e.Weight
		r.h.AddComparisons(1)
		if !r.h.Checkpoint(event.Event{
			Kind:    event.Compare,
			Target:  event.Graph,
			Mark:    event.Comparing,
			Indices: []int{u, v},
			Values:  []int{int(cand), finite(r.res.Dist[v])},
			Label:   LabelRelax,
		}) {
			return stepper.ErrCancelled
		}
		if cand > r.options.MaxDistance || cand >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = cand
		r.res.Prev[v] = u
		update := event.Written(event.Graph, v, int(cand))
		update.Label = LabelUpdate
		if !r.h.Checkpoint(update) {
			return stepper.ErrCancelled
		}
	}

	return nil
}

func finite(d int64) int {
	if d == Inf {
		return -1
	}

	return int(d)
}
