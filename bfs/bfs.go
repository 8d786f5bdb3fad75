// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order, together
// with Kahn's in-degree topological ordering, which shares its FIFO queue.
//
// Both suspend through a *stepper.Handle:
//
//	enqueue - highlight [pivot] on the discovered vertex, Values = [depth]
//	visit   - event.Visited on the dequeued vertex
//	edge    - compare on [from, to] for every examined edge (counted)
//
// Determinism: core.Graph reports neighbors in insertion order and the
// queue is FIFO, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	h       *stepper.Handle
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, stepper.ErrCancelled when the run is
// cancelled, or any user-supplied hook error. The partial result is returned
// alongside cancellation and hook errors.
func BFS(h *stepper.Handle, g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		h:       h,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	if !w.enqueue(start, 0, -1) {
		return w.res, stepper.ErrCancelled
	}

	return w.res, w.loop()
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) bool {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})

	return w.h.Checkpoint(event.Event{
		Kind:    event.Highlight,
		Target:  event.Graph,
		Mark:    event.Pivot,
		Indices: []int{id},
		Values:  []int{d},
		Label:   LabelEnqueue,
	})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if !w.h.Checkpoint(event.Visited(item.id, LabelVisit)) {
		return stepper.ErrCancelled
	}
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors examines every edge leaving item, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		w.h.AddComparisons(1)
		if !w.h.Checkpoint(edgeEvent(e)) {
			return stepper.ErrCancelled
		}
		if !w.visited[e.To] && !w.enqueue(e.To, nextDepth, item.id) {
			return stepper.ErrCancelled
		}
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
