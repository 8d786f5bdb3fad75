package dp

import (
	"fmt"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Fibonacci computes F(0..n) bottom-up and returns the whole table.
//
// Each entry is committed as Cell(0, i) in order, the two base cases first.
// Fibonacci performs no comparisons or swaps, so the run counters stay zero.
//
// Complexity: O(n) time, O(n) memory.
func Fibonacci(h *stepper.Handle, n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeN, n)
	}
	if n > MaxFibonacci {
		return nil, fmt.Errorf("%w: n=%d (max %d)", ErrOverflow, n, MaxFibonacci)
	}

	f := make([]int64, n+1)
	for i := range f {
		if i > 1 {
			f[i] = f[i-1] + f[i-2]
		} else {
			f[i] = int64(i)
		}
		if !h.Checkpoint(event.Cell(0, i, f[i])) {
			return f[:i+1], stepper.ErrCancelled
		}
	}

	return f, nil
}
