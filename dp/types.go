// Package dp provides step-instrumented dynamic programming routines:
// Fibonacci, 0/1 Knapsack, Longest Common Subsequence and Bellman-Ford.
//
// Every routine fills a table cell by cell and reports each committed cell as
// an event on the Table target, so an observer can replay the table as it
// grows. Inputs are never modified; on cancellation the routines return the
// partially filled result together with stepper.ErrCancelled.
package dp

import (
	"errors"
)

// MaxFibonacci is the largest n whose Fibonacci number fits in an int64.
const MaxFibonacci = 92

// MaxCapacity bounds the knapsack table width.
const MaxCapacity = 1 << 16

// Event labels.
const (
	LabelTake          = "take"
	LabelMatch         = "match"
	LabelRelax         = "relax"
	LabelUpdate        = "update"
	LabelNegativeCycle = "negative-cycle"
)

// Sentinel errors.
var (
	// ErrNegativeN is returned for Fibonacci(n) with n < 0.
	ErrNegativeN = errors.New("dp: n must be non-negative")

	// ErrOverflow is returned for Fibonacci(n) with n > MaxFibonacci.
	ErrOverflow = errors.New("dp: result overflows int64")

	// ErrBadCapacity is returned when the knapsack capacity is negative or above MaxCapacity.
	ErrBadCapacity = errors.New("dp: capacity out of range")

	// ErrBadItem is returned when a knapsack item has a negative weight or value.
	ErrBadItem = errors.New("dp: item weight and value must be non-negative")

	// ErrGraphNil is returned when Bellman-Ford receives a nil graph.
	ErrGraphNil = errors.New("dp: graph is nil")
)

// Item is a 0/1 knapsack candidate.
type Item struct {
	Weight int `json:"weight"`
	Value  int `json:"value"`
}

// KnapsackResult holds the filled table and the optimal selection.
type KnapsackResult struct {
	// Table has len(items)+1 rows and capacity+1 columns.
	Table [][]int64
	// Best is the optimal total value, Table[n][capacity].
	Best int64
	// Items are the indices of the chosen items, ascending.
	Items []int
}

// LCSResult holds the filled table and one longest common subsequence.
type LCSResult struct {
	Table    [][]int
	Length   int
	Sequence string
}

// BellmanFordResult holds single-source distances and the per-pass history.
type BellmanFordResult struct {
	// Dist[v] is the best known distance to v, Inf when unreachable.
	Dist []int64
	// Prev[v] is the predecessor of v on its best path, or -1.
	Prev []int
	// Passes[p] is a copy of Dist after relaxation pass p; Passes[0] is the
	// initial state.
	Passes [][]int64
	// NegativeCycle reports that the detection pass still found an improvable
	// edge, meaning a negative cycle is reachable from the source.
	NegativeCycle bool
}
