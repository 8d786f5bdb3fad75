// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces the edges forming the MST.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil or directed.
//   - ErrDisconnected  : if |V| == 0 or the graph is not fully connected.
//
// Steps:
//  1. Validate graph.
//  2. Collect all edges, skipping self-loops.
//  3. Stable-sort edges by ascending Weight; equal weights keep insertion order.
//  4. Initialize DSU parent[] and rank[].
//  5. For each edge (u,v): suspend on it ("consider", counted as one
//     comparison), then accept it iff find(u) != find(v).
//  6. Stop once the MST has |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(h *stepper.Handle, graph *core.Graph) (*Result, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, err
	}
	numVerts := graph.VertexCount()
	res := &Result{Edges: make([]core.Edge, 0, numVerts-1)}
	if numVerts == 1 {
		return res, nil
	}

	// 2-3. Collect and sort edges.
	edges := slices.DeleteFunc(graph.Edges(), func(e core.Edge) bool { return e.From == e.To })
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	// 4. Disjoint sets.
	ds := newDisjointSet(numVerts)

	// 5. Build MST by iterating over sorted edges.
	for _, e := range edges {
		h.AddComparisons(1)
		if !h.Checkpoint(edgeEvent(event.Compare, event.Comparing, e, LabelConsider)) {
			return res, stepper.ErrCancelled
		}

		if !ds.union(e.From, e.To) {
			if !h.Checkpoint(edgeEvent(event.Highlight, event.Clear, e, LabelReject)) {
				return res, stepper.ErrCancelled
			}
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		if !h.Checkpoint(edgeEvent(event.Highlight, event.Sorted, e, LabelAccept)) {
			return res, stepper.ErrCancelled
		}
		// 6. Early exit once spanning.
		if len(res.Edges) == numVerts-1 {
			return res, nil
		}
	}

	return res, ErrDisconnected
}

func edgeEvent(k event.Kind, m event.Mark, e core.Edge, label string) event.Event {
	return event.Event{
		Kind:    k,
		Target:  event.Graph,
		Mark:    m,
		Indices: []int{e.From, e.To},
		Values:  []int{int(e.Weight)},
		Label:   label,
	}
}

// disjointSet is union-find over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for v := range ds.parent {
		ds.parent[v] = v
	}

	return ds
}

// find returns the root of u, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
