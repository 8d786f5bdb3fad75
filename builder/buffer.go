package builder

import (
	"slices"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dp"
)

// Buffer is the input of one run. It is exclusively owned by that run:
// algorithms mutate Array in place, so every run gets its own Clone.
type Buffer struct {
	// Seed is the per-buffer seed the contents were derived from (0 when pinned).
	Seed uint64

	// Array feeds sorting, search and tree construction.
	Array []int
	// Target is the value searched for by the search algorithms.
	Target int

	// Graph is a weighted directed graph, acyclic unless a scenario allowed cycles.
	Graph *core.Graph
	// Source is the start vertex for traversals and shortest paths.
	Source int

	Knapsack Knapsack
	LCS      LCS
	// Fibonacci is the n of the Fibonacci table.
	Fibonacci int

	// Outcome is a one-line summary written by a run that completed normally.
	Outcome string
}

// Knapsack is a 0/1 knapsack instance.
type Knapsack struct {
	Capacity int       `json:"capacity"`
	Items    []dp.Item `json:"items"`
}

// LCS is a pair of strings for the longest common subsequence.
type LCS struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	c := *b
	c.Array = slices.Clone(b.Array)
	if b.Graph != nil {
		c.Graph = b.Graph.Clone()
	}
	c.Knapsack.Items = slices.Clone(b.Knapsack.Items)

	return &c
}

// Source hands out fresh buffers. size is the requested array length;
// zero selects the source's default. Sources are not safe for concurrent use.
type Source interface {
	Next(size int) (*Buffer, error)
}

// Fixed is a Source that always serves a clone of the same buffer,
// ignoring the requested size.
type Fixed struct {
	buf *Buffer
}

// NewFixed returns a Source pinned to buf. buf is copied.
func NewFixed(buf *Buffer) *Fixed {
	return &Fixed{buf: buf.Clone()}
}

// Next implements Source.
func (f *Fixed) Next(int) (*Buffer, error) {
	return f.buf.Clone(), nil
}

// SampleGraph returns the six-vertex directed network used in the docs and
// examples. From vertex 0 the shortest distances are [0 7 9 20 20 11].
func SampleGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithVertices(6))
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 7}, {From: 0, To: 2, Weight: 9}, {From: 0, To: 5, Weight: 14},
		{From: 1, To: 2, Weight: 10}, {From: 1, To: 3, Weight: 15},
		{From: 2, To: 3, Weight: 11}, {From: 2, To: 5, Weight: 2},
		{From: 3, To: 4, Weight: 6},
		{From: 5, To: 4, Weight: 9},
	} {
		// Endpoints are in range by construction.
		_ = g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}
