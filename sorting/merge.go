package sorting

import (
	"slices"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Merge sorts a with top-down merge sort and finishes with a sorted highlight
// pass over the whole slice. Every merged element written back counts as a swap.
//
// A merge interrupted by cancellation completes its remaining writes without
// suspending before the sort returns, so the slice never holds duplicated
// values from a half-finished merge.
//
// Complexity: O(n log n) time, O(n) extra memory. Stable.
func Merge(h *stepper.Handle, a []int) error {
	if err := mergeSort(h, a, 0, len(a)-1); err != nil {
		return err
	}

	return finishSorted(h, a)
}

func mergeSort(h *stepper.Handle, a []int, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	mid := (lo + hi) / 2
	if err := mergeSort(h, a, lo, mid); err != nil {
		return err
	}
	if err := mergeSort(h, a, mid+1, hi); err != nil {
		return err
	}
	merge(h, a, lo, mid, hi)
	if h.Cancelled() {
		return stepper.ErrCancelled
	}

	return nil
}

// merge combines the sorted runs a[lo:mid+1] and a[mid+1:hi+1]. Once the handle
// is cancelled Suspend is a no-op and counting stops, so the loop simply
// drains.
func merge(h *stepper.Handle, a []int, lo, mid, hi int) {
	left := slices.Clone(a[lo : mid+1])
	right := slices.Clone(a[mid+1 : hi+1])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if !h.Cancelled() {
			compare(h, lo+i, mid+1+j)
		}
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		write(h, a, k)
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		a[k] = left[i]
		write(h, a, k)
	}
	for ; j < len(right); j, k = j+1, k+1 {
		a[k] = right[j]
		write(h, a, k)
	}
}

// write reports a[k] as committed unless the run is already cancelled.
func write(h *stepper.Handle, a []int, k int) {
	if h.Cancelled() {
		return
	}
	h.AddSwaps(1)
	h.Suspend(event.Written(event.Buffer, k, a[k]))
}
