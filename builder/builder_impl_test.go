// Package builder_test contains functional tests for the graph constructors
// and the Generator, verifying topology, counts, determinism and acyclicity.
package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
)

var directed = []core.GraphOption{core.WithDirected(true)}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", nil, []builder.Constructor{builder.Path(4)}, 4, 3},
		{"RandomDAG(5,0)", nil, []builder.Constructor{builder.RandomDAG(5, 0)}, 5, 0},
		// Pairs (i,j) with j >= i+2 over 5 vertices: 3+2+1.
		{"RandomDAG(5,1)", nil, []builder.Constructor{builder.RandomDAG(5, 1)}, 5, 6},
		{"Path+RandomDAG(5,1)", nil, []builder.Constructor{builder.Path(5), builder.RandomDAG(5, 1)}, 5, 10},
		{"RandomDAG(1,0.5)", []builder.BuilderOption{builder.WithSeed(3)}, []builder.Constructor{builder.RandomDAG(1, 0.5)}, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(directed, tc.bopts, tc.cons...)
			if err != nil {
				t.Fatalf("BuildGraph: unexpected error: %v", err)
			}
			if g.VertexCount() != tc.wantV || g.EdgeCount() != tc.wantE {
				t.Errorf("got V=%d E=%d, want V=%d E=%d", g.VertexCount(), g.EdgeCount(), tc.wantV, tc.wantE)
			}
			if cycle, ok := dfs.FindCycle(g); ok {
				t.Errorf("expected acyclic graph, found cycle %v", cycle)
			}
		})
	}
}

// TestBuilders_Errors checks the sentinel errors of each constructor.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"RandomDAG(0,0)", builder.RandomDAG(0, 0), builder.ErrTooFewVertices},
		{"RandomDAG(3,-0.1)", builder.RandomDAG(3, -0.1), builder.ErrInvalidProbability},
		{"RandomDAG(3,0.5) without rng", builder.RandomDAG(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(directed, nil, tc.cons)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := builder.BuildGraph([]core.GraphOption{core.WithVertices(-1)}, nil); !errors.Is(err, core.ErrBadVertexCount) {
		t.Errorf("bad graph option: expected ErrBadVertexCount, got %v", err)
	}
}

// TestGenerator_Deterministic verifies that equal seeds give equal buffers and
// that Build reproduces a buffer from its Seed.
func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.NewGenerator(builder.WithSeed(7)).Next(12)
	if err != nil {
		t.Fatal(err)
	}
	b, err := builder.NewGenerator(builder.WithSeed(7)).Next(12)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Array, b.Array); diff != "" {
		t.Errorf("arrays differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Graph.Edges(), b.Graph.Edges()); diff != "" {
		t.Errorf("graphs differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Knapsack, b.Knapsack); diff != "" {
		t.Errorf("knapsack differs (-a +b):\n%s", diff)
	}
	if a.LCS != b.LCS || a.Fibonacci != b.Fibonacci || a.Target != b.Target {
		t.Errorf("scalars differ: %+v vs %+v", a.LCS, b.LCS)
	}

	c, err := builder.NewGenerator().Build(a.Seed, 12)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Array, c.Array); diff != "" {
		t.Errorf("Build(seed) differs (-a +c):\n%s", diff)
	}

	// Consecutive buffers differ.
	gen := builder.NewGenerator(builder.WithSeed(7))
	first, _ := gen.Next(12)
	second, _ := gen.Next(12)
	if first.Seed == second.Seed {
		t.Errorf("consecutive buffers share seed %d", first.Seed)
	}
}

// TestGenerator_Shape checks the documented bounds of generated buffers.
func TestGenerator_Shape(t *testing.T) {
	t.Parallel()

	gen := builder.NewGenerator(builder.WithSeed(1), builder.WithMaxValue(10), builder.WithSize(30))
	for i := 0; i < 20; i++ {
		buf, err := gen.Next(0)
		if err != nil {
			t.Fatal(err)
		}
		if len(buf.Array) != 30 {
			t.Fatalf("array length: want 30, got %d", len(buf.Array))
		}
		found := false
		for _, v := range buf.Array {
			if v < 1 || v > 10 {
				t.Fatalf("value %d outside [1,10]", v)
			}
			found = found || v == buf.Target
		}
		if !found {
			t.Errorf("target %d not in array", buf.Target)
		}
		if buf.Graph.VertexCount() != builder.MaxGraphVertices || !buf.Graph.Directed() {
			t.Errorf("graph: want %d directed vertices, got %d", builder.MaxGraphVertices, buf.Graph.VertexCount())
		}
		if _, ok := dfs.FindCycle(buf.Graph); ok {
			t.Errorf("generated graph has a cycle")
		}
		if len(buf.Knapsack.Items) == 0 || buf.Knapsack.Capacity < 1 {
			t.Errorf("knapsack: %+v", buf.Knapsack)
		}
		if len(buf.LCS.A) == 0 || len(buf.LCS.B) == 0 {
			t.Errorf("lcs: %+v", buf.LCS)
		}
	}

	if _, err := gen.Next(builder.MaxSize + 1); !errors.Is(err, builder.ErrBadSize) {
		t.Errorf("oversized buffer: expected ErrBadSize, got %v", err)
	}
}

// TestBuffer_Clone verifies that clones share nothing mutable.
func TestBuffer_Clone(t *testing.T) {
	t.Parallel()

	buf, err := builder.NewGenerator(builder.WithSeed(2)).Next(4)
	if err != nil {
		t.Fatal(err)
	}
	c := buf.Clone()
	c.Array[0] = -1
	c.Knapsack.Items[0].Value = -1
	if err := c.Graph.AddEdge(0, 3, 1); err != nil {
		t.Fatal(err)
	}
	if buf.Array[0] == -1 || buf.Knapsack.Items[0].Value == -1 {
		t.Errorf("clone shares slices with original")
	}
	if buf.Graph.EdgeCount() == c.Graph.EdgeCount() {
		t.Errorf("clone shares graph with original")
	}

	fixed := builder.NewFixed(buf)
	x, _ := fixed.Next(99)
	x.Array[1] = -5
	y, _ := fixed.Next(0)
	if y.Array[1] == -5 {
		t.Errorf("Fixed serves shared buffers")
	}
}

// TestSampleGraph checks the reference network shape.
func TestSampleGraph(t *testing.T) {
	t.Parallel()

	g := builder.SampleGraph()
	if g.VertexCount() != 6 || g.EdgeCount() != 9 || !g.Directed() {
		t.Errorf("SampleGraph: got V=%d E=%d directed=%v", g.VertexCount(), g.EdgeCount(), g.Directed())
	}
}
