// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected *core.Graph and grows the MST from a root vertex.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph by
// growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil or directed.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or some vertex is unreachable from root.
//
// Steps:
//  1. Validate graph and root.
//  2. key[v] = +∞, parent[v] = -1 for all v; key[root] = 0.
//  3. Repeat |V| times:
//     a. Linear scan for the vertex u outside the tree with the smallest key
//     (ties go to the lower ID); +∞ means the rest is unreachable.
//     b. Add u (and edge parent[u]–u) to the tree ("add").
//     c. For each edge u–v with v outside the tree: compare w with key[v]
//     ("key", counted) and on improvement set key[v]=w, parent[v]=u ("update").
//
// Complexity: O(V² + E) time, O(V) memory.
func Prim(h *stepper.Handle, graph *core.Graph, root int) (*Result, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, err
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrVertexNotFound)
	}

	// 2. Key and parent arrays.
	n := graph.VertexCount()
	key := make([]int64, n)
	parent := make([]int, n)
	weight := make([]int64, n) // weight of the edge parent[v]–v
	inTree := make([]bool, n)
	for v := range key {
		key[v], parent[v] = math.MaxInt64, -1
	}
	key[root] = 0
	res := &Result{Edges: make([]core.Edge, 0, n-1)}

	// 3. Grow the tree one vertex at a time.
	for range n {
		u := -1
		for v := range key {
			if !inTree[v] && key[v] != math.MaxInt64 && (u == -1 || key[v] < key[u]) {
				u = v
			}
		}
		if u == -1 {
			return res, ErrDisconnected
		}

		inTree[u] = true
		add := event.Event{Kind: event.Highlight, Target: event.Graph, Mark: event.Sorted, Indices: []int{u}, Label: LabelAdd}
		if parent[u] >= 0 {
			e := core.Edge{From: parent[u], To: u, Weight: weight[u]}
			res.Edges = append(res.Edges, e)
			res.Total += e.Weight
			add.Indices = []int{e.From, e.To}
			add.Values = []int{int(e.Weight)}
		}
		if !h.Checkpoint(add) {
			return res, stepper.ErrCancelled
		}

		edges, err := graph.Neighbors(u)
		if err != nil {
			return res, err
		}
		for _, e := range edges {
			v := e.To
			if inTree[v] {
				continue
			}
			h.AddComparisons(1)
			if !h.Checkpoint(edgeEvent(event.Compare, event.Comparing, e, LabelKey)) {
				return res, stepper.ErrCancelled
			}
			if e.Weight < key[v] {
				key[v], parent[v], weight[v] = e.Weight, u, e.Weight
				upd := event.Written(event.Graph, v, int(e.Weight))
				upd.Label = LabelUpdate
				if !h.Checkpoint(upd) {
					return res, stepper.ErrCancelled
				}
			}
		}
	}

	return res, nil
}
