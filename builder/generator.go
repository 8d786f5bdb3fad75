package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dp"
)

// Generator is the seeded Source. Each call to Next draws a fresh per-buffer
// seed from the base seed, and every part of the buffer derives from it, so
// a buffer is reproducible from (its Seed, size) alone via Build.
type Generator struct {
	cfg   builderConfig
	seeds *rand.Rand
}

// NewGenerator returns a Generator configured by opts (WithSeed, WithSize,
// WithMaxValue, WithWeightFn, WithDensity).
func NewGenerator(opts ...BuilderOption) *Generator {
	cfg := newBuilderConfig(opts...)

	return &Generator{cfg: cfg, seeds: newRand(cfg.seed)}
}

// Next implements Source.
func (g *Generator) Next(size int) (*Buffer, error) {
	return g.Build(g.seeds.Uint64(), size)
}

// Build derives a buffer of the given size from seed. size 0 selects the
// configured default.
//
// Steps:
//  1. Array: size values uniform in [1, maxValue]; Target is one of them.
//  2. Graph: directed, min(max(size,2), MaxGraphVertices) vertices, the chain
//     Path(n) plus RandomDAG(n, density) forward edges; Source = 0.
//  3. Knapsack: up to 8 items, capacity half of their total weight.
//  4. LCS: two strings over "ABCD"; Fibonacci n grows with size.
//
// Complexity: O(size + V²).
func (g *Generator) Build(seed uint64, size int) (*Buffer, error) {
	if size == 0 {
		size = g.cfg.size
	}
	if err := validateSize(MethodGenerate, size); err != nil {
		return nil, err
	}
	r := newRand(seed)
	buf := &Buffer{Seed: seed}

	// 1. Array.
	buf.Array = make([]int, size)
	for i := range buf.Array {
		buf.Array[i] = 1 + r.IntN(g.cfg.maxValue)
	}
	buf.Target = buf.Array[r.IntN(size)]

	// 2. Graph.
	n := max(MinPathNodes, min(size, MaxGraphVertices))
	graph, err := BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]BuilderOption{WithRand(r), WithWeightFn(g.cfg.weightFn)},
		Path(n), RandomDAG(n, g.cfg.density),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	buf.Graph = graph

	// 3. Knapsack.
	items := make([]dp.Item, max(1, min(size/2, maxKnapsackItems)))
	total := 0
	for i := range items {
		items[i] = dp.Item{Weight: 1 + r.IntN(maxItemWeight), Value: 1 + r.IntN(maxItemValue)}
		total += items[i].Weight
	}
	buf.Knapsack = Knapsack{Capacity: max(1, total/2), Items: items}

	// 4. LCS and Fibonacci.
	l := max(1, min(size/2, maxLCSLength))
	buf.LCS = LCS{A: randomString(r, l), B: randomString(r, l)}
	buf.Fibonacci = max(minFibonacci, min(size, maxFibonacciInput))

	return buf, nil
}

func randomString(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = lcsAlphabet[r.IntN(len(lcsAlphabet))]
	}

	return string(b)
}
