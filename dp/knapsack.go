package dp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Knapsack solves the 0/1 knapsack problem for the given capacity.
//
// Algorithm Outline:
//  1. Allocate an (n+1)×(capacity+1) table T with row 0 all zero.
//  2. For i = 1..n, w = 0..capacity:
//     T[i][w] = T[i-1][w]
//     if weight[i-1] <= w: T[i][w] = max(T[i][w], T[i-1][w-weight]+value)
//     (one counted comparison), then commit Cell(i, w).
//  3. Trace back from (n, capacity): item i-1 was taken iff T[i][w] != T[i-1][w];
//     each taken item is highlighted on its cell with label "take".
//
// Complexity: O(n·W) time and memory.
func Knapsack(h *stepper.Handle, capacity int, items []Item) (*KnapsackResult, error) {
	if capacity < 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrBadItem, i)
		}
	}

	n := len(items)
	res := &KnapsackResult{Table: make([][]int64, n+1)}
	for i := range res.Table {
		res.Table[i] = make([]int64, capacity+1)
	}
	t := res.Table

	// Fill.
	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			t[i][w] = t[i-1][w]
			if it.Weight <= w {
				h.AddComparisons(1)
				if with := t[i-1][w-it.Weight] + int64(it.Value); with > t[i][w] {
					t[i][w] = with
				}
			}
			if !h.Checkpoint(event.Cell(i, w, t[i][w])) {
				return res, stepper.ErrCancelled
			}
		}
	}
	res.Best = t[n][capacity]

	// Trace back.
	w := capacity
	for i := n; i > 0; i-- {
		if t[i][w] == t[i-1][w] {
			continue
		}
		res.Items = append(res.Items, i-1)
		if !h.Checkpoint(tableMark(i, w, LabelTake)) {
			return res, stepper.ErrCancelled
		}
		w -= items[i-1].Weight
	}
	slices.Reverse(res.Items)

	return res, nil
}

func tableMark(row, col int, label string) event.Event {
	return event.Event{Kind: event.Highlight, Target: event.Table, Mark: event.Sorted, Indices: []int{row, col}, Label: label}
}
