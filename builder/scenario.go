package builder

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
	"github.com/katalvlaran/algostep/dp"
)

// Scenario pins the inputs of a run. Sections left out are generated from
// Seed, so a scenario only needs to spell out what it cares about:
//
//	name: dijkstra-demo
//	seed: 7
//	array: [5, 3, 8, 1]
//	graph:
//	  vertices: 3
//	  source: 0
//	  edges:
//	    - {from: 0, to: 1, weight: 4}
//	    - {from: 1, to: 2, weight: 1}
type Scenario struct {
	Name      string     `json:"name,omitempty"`
	Seed      uint64     `json:"seed,omitempty"`
	Array     []int      `json:"array,omitempty"`
	Target    *int       `json:"target,omitempty"`
	Graph     *GraphSpec `json:"graph,omitempty"`
	Knapsack  *Knapsack  `json:"knapsack,omitempty"`
	LCS       *LCS       `json:"lcs,omitempty"`
	Fibonacci *int       `json:"fibonacci,omitempty"`
}

// GraphSpec describes a scenario graph. Graphs are directed unless
// Undirected is set, and must be acyclic unless AllowCycles is set.
type GraphSpec struct {
	Vertices    int        `json:"vertices"`
	Undirected  bool       `json:"undirected,omitempty"`
	AllowCycles bool       `json:"allowCycles,omitempty"`
	Source      int        `json:"source,omitempty"`
	Edges       []EdgeSpec `json:"edges,omitempty"`
}

// EdgeSpec is one weighted edge of a GraphSpec.
type EdgeSpec struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// LoadScenario reads and validates the scenario file at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodScenario, err)
	}

	return ParseScenario(data)
}

// ParseScenario decodes a YAML (or JSON) scenario, rejecting unknown fields,
// and validates it.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodScenario, ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate reports every problem of s at once; multierr.Errors splits the
// result. Each problem wraps ErrInvalidScenario, graph cycles also wrap
// ErrCyclicGraph.
func (s *Scenario) Validate() error {
	_, err := s.validate()

	return err
}

func (s *Scenario) validate() (*core.Graph, error) {
	var errs error
	bad := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	if len(s.Array) > MaxSize {
		bad("array: %d elements exceed %d", len(s.Array), MaxSize)
	}
	if s.Target != nil && len(s.Array) == 0 {
		bad("target: set without an array")
	}
	if s.Fibonacci != nil && (*s.Fibonacci < 0 || *s.Fibonacci > dp.MaxFibonacci) {
		bad("fibonacci: %d not in [0,%d]", *s.Fibonacci, dp.MaxFibonacci)
	}
	if k := s.Knapsack; k != nil {
		if k.Capacity < 0 || k.Capacity > dp.MaxCapacity {
			bad("knapsack.capacity: %d not in [0,%d]", k.Capacity, dp.MaxCapacity)
		}
		for i, it := range k.Items {
			if it.Weight < 0 || it.Value < 0 {
				bad("knapsack.items[%d]: negative weight or value", i)
			}
		}
	}

	var g *core.Graph
	if spec := s.Graph; spec != nil {
		var gerr error
		g, gerr = spec.build()
		errs = multierr.Append(errs, gerr)
	}

	return g, errs
}

// build validates the graph section and constructs it; problems are aggregated.
func (spec *GraphSpec) build() (*core.Graph, error) {
	var errs error
	bad := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: graph."+format, append([]any{ErrInvalidScenario}, args...)...))
	}

	if spec.Vertices < 1 || spec.Vertices > MaxSize {
		bad("vertices: %d not in [1,%d]", spec.Vertices, MaxSize)

		return nil, errs
	}
	if spec.Source < 0 || spec.Source >= spec.Vertices {
		bad("source: %d out of range", spec.Source)
	}

	opts := []core.GraphOption{core.WithDirected(!spec.Undirected), core.WithVertices(spec.Vertices)}
	if spec.AllowCycles {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for i, e := range spec.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			bad("edges[%d]: %v", i, err)
		}
	}
	if !spec.AllowCycles {
		if cycle, ok := dfs.FindCycle(g); ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: graph: %w %v", ErrInvalidScenario, ErrCyclicGraph, cycle))
		}
	}
	if errs != nil {
		return nil, errs
	}

	return g, nil
}

// Buffer validates s and materializes it. Sections missing from s come from
// Generator.Build(Seed, len(Array)), or DefaultSize when Array is empty.
// When Target is unset it defaults to the middle element of Array.
func (s *Scenario) Buffer() (*Buffer, error) {
	g, err := s.validate()
	if err != nil {
		return nil, err
	}

	size := len(s.Array)
	if size == 0 {
		size = DefaultSize
	}
	buf, err := NewGenerator(WithSeed(s.Seed)).Build(s.Seed, size)
	if err != nil {
		return nil, err
	}

	if len(s.Array) > 0 {
		buf.Array = append([]int(nil), s.Array...)
		buf.Target = s.Array[len(s.Array)/2]
	}
	if s.Target != nil {
		buf.Target = *s.Target
	}
	if g != nil {
		buf.Graph, buf.Source = g, s.Graph.Source
	}
	if s.Knapsack != nil {
		buf.Knapsack = Knapsack{Capacity: s.Knapsack.Capacity, Items: append([]dp.Item(nil), s.Knapsack.Items...)}
	}
	if s.LCS != nil {
		buf.LCS = *s.LCS
	}
	if s.Fibonacci != nil {
		buf.Fibonacci = *s.Fibonacci
	}

	return buf, nil
}
