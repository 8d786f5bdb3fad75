// Package core defines the Graph and Edge types the graph algorithms operate on.
//
// Vertices are dense integers 0..VertexCount()-1, which keeps per-vertex state
// in plain slices and makes every traversal order reproducible: neighbors are
// reported in edge insertion order. A Graph is either directed or undirected;
// Undirected derives the symmetric view used by spanning-tree algorithms.
//
// All methods are safe for concurrent use; mutation and queries are guarded by
// a single sync.RWMutex.
//
// Errors:
//
//	ErrVertexNotFound   - an edge endpoint or query refers to a missing vertex.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
//	ErrBadVertexCount   - a negative number of vertices was requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")
)

// Edge connects From to To with an integer Weight.
// In an undirected graph the orientation only records how the edge was added.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Reverse returns the edge with its endpoints exchanged.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithVertices pre-allocates n vertices, 0..n-1. Negative n is recorded and
// surfaced by NewGraphE.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		if n < 0 {
			g.err = ErrBadVertexCount
			return
		}
		g.grow(n)
	}
}

// Graph is an adjacency-list graph over integer vertices.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	// edges holds every edge once, in insertion order.
	edges []Edge
	// adj[v] lists edges leaving v (for undirected graphs, both orientations).
	adj [][]Edge

	err error
}

// NewGraph creates a Graph; by default it is undirected, loop-free and empty.
// Invalid options are ignored; use NewGraphE to observe them.
// Complexity: O(V) for pre-allocated vertices.
func NewGraph(opts ...GraphOption) *Graph {
	g, _ := NewGraphE(opts...)

	return g
}

// NewGraphE is NewGraph that also reports invalid options.
func NewGraphE(opts ...GraphOption) (*Graph, error) {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		err := g.err
		g.err = nil

		return g, err
	}

	return g, nil
}

// grow appends vertices until the graph has n of them. Caller holds mu or owns g.
func (g *Graph) grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}
