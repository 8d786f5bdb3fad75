package sorting

import (
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Quick sorts a in place with recursive Lomuto partitioning. The pivot is the
// last element of each range and elements strictly less than it move left.
//
// Complexity: O(n log n) expected, O(n²) on sorted input; O(log n) to O(n)
// stack. Not stable.
func Quick(h *stepper.Handle, a []int) error {
	return quick(h, a, 0, len(a)-1)
}

func quick(h *stepper.Handle, a []int, lo, hi int) error {
	if lo > hi {
		return nil
	}
	if lo == hi {
		if !h.Checkpoint(event.Marked(event.Sorted, lo)) {
			return stepper.ErrCancelled
		}

		return nil
	}

	p, ok := partition(h, a, lo, hi)
	if !ok {
		return stepper.ErrCancelled
	}
	if err := quick(h, a, lo, p-1); err != nil {
		return err
	}

	return quick(h, a, p+1, hi)
}

// partition places a[hi] at its final position p and returns it, with every
// element of a[lo:p] strictly less than the pivot.
func partition(h *stepper.Handle, a []int, lo, hi int) (int, bool) {
	pivot := a[hi]
	if !h.Checkpoint(event.Marked(event.Pivot, hi)) {
		return 0, false
	}

	i := lo
	for j := lo; j < hi; j++ {
		if !compare(h, j, hi) {
			return 0, false
		}
		if a[j] < pivot {
			if i != j && !swap(h, a, i, j) {
				return 0, false
			}
			i++
		}
	}
	if i != hi && !swap(h, a, i, hi) {
		return 0, false
	}
	if !h.Checkpoint(event.Marked(event.Sorted, i)) {
		return 0, false
	}

	return i, true
}
