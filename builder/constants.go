// Package builder defines shared constants used by buffer builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodRandomDAG is the canonical name for the RandomDAG constructor.
	MethodRandomDAG = "RandomDAG"
	// MethodGenerate is the canonical name for Generator.Next.
	MethodGenerate = "Generate"
	// MethodScenario is the canonical name for scenario loading.
	MethodScenario = "Scenario"
)

//-----------------------------------------------------------------------------
// Buffer Sizes
//-----------------------------------------------------------------------------

// DefaultSize is the array length a Generator uses when none is configured.
const DefaultSize = 20

// MinSize is the smallest buffer size accepted by Generator.Next.
const MinSize = 1

// MaxSize is the largest buffer size accepted by Generator.Next.
const MaxSize = 1024

// DefaultMaxValue bounds generated array values to [1, DefaultMaxValue].
const DefaultMaxValue = 100

// MaxGraphVertices caps generated graphs; larger sizes are clamped.
const MaxGraphVertices = 16

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinRandomDAGNodes is the smallest size accepted by RandomDAG.
const MinRandomDAGNodes = 1

// DefaultDensity is the probability of each extra forward edge in generated graphs.
const DefaultDensity = 0.25

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// DefaultMaxWeight bounds generated edge weights to [1, DefaultMaxWeight].
const DefaultMaxWeight int64 = 20

// MinProbability is the lower bound for the probability parameter p, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p, inclusive.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// DP inputs
//-----------------------------------------------------------------------------

const (
	maxKnapsackItems  = 8
	maxItemWeight     = 10
	maxItemValue      = 30
	maxLCSLength      = 10
	lcsAlphabet       = "ABCD"
	minFibonacci      = 5
	maxFibonacciInput = 30
)
