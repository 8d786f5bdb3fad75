// Package dfs implements depth-first search (single-source and forest),
// DFS-based topological sort and cycle finding on core.Graph.
//
// Traversals suspend through a *stepper.Handle:
//
//	visit  - event.Visited when a vertex is discovered (pre-order)
//	edge   - compare on [from, to] for each examined edge (counted)
//	finish - highlight [sorted] when a vertex turns Black (post-order)
//
// Neighbors are explored in insertion order and forest roots in ascending ID
// order, so every run over the same graph is identical.
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the recursion stack and per-vertex state.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - stepper.ErrCancelled      if the run was cancelled.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	h     *stepper.Handle
	opts  DFSOptions // traversal options
	res   *DFSResult // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// The partial result is returned together with any abort error.
func DFS(h *stepper.Handle, g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Visit:  make([]int, 0, n),
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v], res.Parent[v] = -1, -1
	}

	walker := &dfsWalker{graph: g, h: h, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, walker.traverse(start, -1, 0)
	}
	for v := 0; v < n; v++ {
		if !res.Visited(v) {
			if err := walker.traverse(v, -1, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits vertex id, discovered from parent at the given depth,
// recursing to neighbors.
func (w *dfsWalker) traverse(id, parent, depth int) error {
	// 1. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark visited and record depth and parent
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.Visit = append(w.res.Visit, id)
	if !w.h.Checkpoint(event.Visited(id, LabelVisit)) {
		return stepper.ErrCancelled
	}

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}

	// 5. Explore each neighbor
	for _, e := range nbs {
		if e.To == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.res.SkippedNeighbors++
			continue
		}

		w.h.AddComparisons(1)
		if !w.h.Checkpoint(edgeEvent(e)) {
			return stepper.ErrCancelled
		}
		if !w.res.Visited(e.To) {
			if err = w.traverse(e.To, id, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)
	if !w.h.Checkpoint(finishEvent(id)) {
		return stepper.ErrCancelled
	}

	return nil
}

func edgeEvent(e core.Edge) event.Event {
	return event.Event{
		Kind:    event.Compare,
		Target:  event.Graph,
		Mark:    event.Comparing,
		Indices: []int{e.From, e.To},
		Values:  []int{int(e.Weight)},
		Label:   LabelEdge,
	}
}

func finishEvent(id int) event.Event {
	return event.Event{Kind: event.Highlight, Target: event.Graph, Mark: event.Sorted, Indices: []int{id}, Label: LabelFinish}
}
