// Package builder produces the input buffers that algorithm runs operate on.
//
// A Buffer bundles every input shape the catalog knows about (an int array,
// a weighted graph with a source vertex, knapsack items, LCS strings and a
// Fibonacci n), so any (topic, algorithm) pair can be bound to it.
//
// The package offers the following key components:
//
//   - Buffer sources (the Source interface):
//     – Generator: seeded; every buffer derives from one per-buffer seed.
//     – Fixed:     serves clones of one pinned buffer (scenario files).
//   - Graph constructors, composed with BuildGraph:
//     – Path:      the chain 0→1→…→n-1.
//     – RandomDAG: forward edges i→j (i<j) with probability p.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Scenario files: YAML documents pinning exact inputs, validated with every
//     problem reported at once.
//
// Guarantees:
//
//   - Determinism: same seed and options ⇒ identical buffers.
//   - Generated graphs are acyclic and weakly connected.
//   - Fast-fail on invalid option parameters via panics in option-constructors;
//     runtime problems surface as sentinel errors wrapped with %w.
package builder
