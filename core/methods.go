package core

import (
	"fmt"
	"slices"
)

// AddVertex appends a new vertex and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adj)
}

// AddEdge connects from and to with weight w.
// Undirected graphs record the edge in both adjacency lists.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: edge %d->%d in graph of %d vertices", ErrVertexNotFound, from, to, n)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	e := Edge{From: from, To: to, Weight: w}
	g.edges = append(g.edges, e)
	g.adj[from] = append(g.adj[from], e)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], e.Reverse())
	}

	return nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of edges, counting each undirected edge once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns the vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj))
	for i := range out {
		out[i] = i
	}

	return out
}

// Neighbors returns the edges leaving v, oriented so that From == v,
// in insertion order. The slice is a copy.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return slices.Clone(g.adj[v]), nil
}

// Edges returns every edge once, in insertion order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}

// InDegrees returns, for each vertex, the number of edges entering it.
// For undirected graphs this is the plain degree.
// Complexity: O(V + E).
func (g *Graph) InDegrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := make([]int, len(g.adj))
	for _, list := range g.adj {
		for _, e := range list {
			deg[e.To]++
		}
	}

	return deg
}

// HasNegativeWeight reports the first edge with a negative weight, if any.
func (g *Graph) HasNegativeWeight() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return e, true
		}
	}

	return Edge{}, false
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		edges:      slices.Clone(g.edges),
		adj:        make([][]Edge, len(g.adj)),
	}
	for v, list := range g.adj {
		c.adj[v] = slices.Clone(list)
	}

	return c
}

// Undirected returns the symmetric view of g: the same vertices and edges,
// every edge traversable in both directions. Undirected graphs are cloned.
func (g *Graph) Undirected() *Graph {
	g.mu.RLock()
	n, edges, loops := len(g.adj), slices.Clone(g.edges), g.allowLoops
	g.mu.RUnlock()

	opts := []GraphOption{WithDirected(false), WithVertices(n)}
	if loops {
		opts = append(opts, WithLoops())
	}
	u := NewGraph(opts...)
	for _, e := range edges {
		// Endpoints are known to exist; loops were admitted by g already.
		_ = u.AddEdge(e.From, e.To, e.Weight)
	}

	return u
}
