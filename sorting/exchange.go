package sorting

import (
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// compare counts one comparison of positions i and j and suspends on it.
func compare(h *stepper.Handle, i, j int) bool {
	h.AddComparisons(1)

	return h.Checkpoint(event.Compared(i, j))
}

// swap exchanges a[i] and a[j], counts it and suspends.
// The exchange is complete before the checkpoint, so a cancelled run still
// holds a permutation.
func swap(h *stepper.Handle, a []int, i, j int) bool {
	a[i], a[j] = a[j], a[i]
	h.AddSwaps(1)

	return h.Checkpoint(event.Swapped(i, j, a[i], a[j]))
}

// markSorted highlights positions [lo, hi] one at a time.
func markSorted(h *stepper.Handle, lo, hi int) bool {
	for i := lo; i <= hi; i++ {
		if !h.Checkpoint(event.Marked(event.Sorted, i)) {
			return false
		}
	}

	return true
}

// finishSorted runs the closing sorted highlight pass over a.
func finishSorted(h *stepper.Handle, a []int) error {
	if !markSorted(h, 0, len(a)-1) {
		return stepper.ErrCancelled
	}

	return nil
}

// Bubble sorts a with adjacent compare-and-swap passes. Each pass shrinks the
// unsorted region by one; with EarlyExit (the default) a pass without swaps
// ends the sort.
//
// [5 3 8 1] takes 3 passes, 6 comparisons and 4 swaps.
//
// Complexity: O(n²) comparisons, O(1) extra memory. Stable.
func Bubble(h *stepper.Handle, a []int, opts ...Option) error {
	o := buildOptions(opts)
	n := len(a)

	for end := n - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if !compare(h, i, i+1) {
				return stepper.ErrCancelled
			}
			if a[i] > a[i+1] {
				swapped = true
				if !swap(h, a, i, i+1) {
					return stepper.ErrCancelled
				}
			}
		}
		if !h.Checkpoint(event.Marked(event.Sorted, end)) {
			return stepper.ErrCancelled
		}
		if !swapped && o.EarlyExit {
			if !h.Checkpoint(event.Range(event.Sorted, 0, end-1)) {
				return stepper.ErrCancelled
			}

			return nil
		}
	}
	if n > 0 && !h.Checkpoint(event.Marked(event.Sorted, 0)) {
		return stepper.ErrCancelled
	}

	return nil
}

// Selection sorts a by repeatedly moving the minimum of the unsorted suffix
// to its front. The running minimum carries the pivot mark.
//
// Complexity: O(n²) comparisons, at most n-1 swaps. Not stable.
func Selection(h *stepper.Handle, a []int) error {
	n := len(a)
	for i := 0; i < n-1; i++ {
		lo := i
		if !h.Checkpoint(event.Marked(event.Pivot, lo)) {
			return stepper.ErrCancelled
		}
		for j := i + 1; j < n; j++ {
			if !compare(h, lo, j) {
				return stepper.ErrCancelled
			}
			if a[j] < a[lo] {
				lo = j
				if !h.Checkpoint(event.Marked(event.Pivot, lo)) {
					return stepper.ErrCancelled
				}
			}
		}
		if lo != i && !swap(h, a, i, lo) {
			return stepper.ErrCancelled
		}
		if !h.Checkpoint(event.Marked(event.Sorted, i)) {
			return stepper.ErrCancelled
		}
	}
	if n > 0 && !h.Checkpoint(event.Marked(event.Sorted, n-1)) {
		return stepper.ErrCancelled
	}

	return nil
}

// Insertion sorts a by holding each element aside, shifting larger elements of
// the sorted prefix one place right and dropping the held key into the gap.
// Each shift counts as a swap. On cancellation the held key is written back
// into the gap.
//
// Complexity: O(n²) worst case, O(n) on sorted input. Stable.
func Insertion(h *stepper.Handle, a []int) error {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		// The gap is always at j+1.
		for j >= 0 {
			if !compare(h, j, j+1) {
				a[j+1] = key

				return stepper.ErrCancelled
			}
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			h.AddSwaps(1)
			if !h.Checkpoint(event.Written(event.Buffer, j+1, a[j+1])) {
				a[j] = key

				return stepper.ErrCancelled
			}
			j--
		}
		a[j+1] = key
		if !h.Checkpoint(event.Written(event.Buffer, j+1, key)) {
			return stepper.ErrCancelled
		}
	}

	return finishSorted(h, a)
}

// Bogo shuffles a until it happens to be sorted. Each round is a full
// Fisher-Yates shuffle, one swap per checkpoint, followed by a single counted
// sortedness check over the whole range.
//
// The expected number of rounds is n!. WithMaxPasses bounds it and makes the
// sort fail with ErrPassLimit instead.
func Bogo(h *stepper.Handle, a []int, opts ...Option) error {
	o := buildOptions(opts)
	r := o.Rand
	if r == nil {
		r = defaultRand()
	}

	for pass := 0; !isSorted(a); pass++ {
		if o.MaxPasses > 0 && pass >= o.MaxPasses {
			return ErrPassLimit
		}
		for i := len(a) - 1; i > 0; i-- {
			if !swap(h, a, i, r.IntN(i+1)) {
				return stepper.ErrCancelled
			}
		}
		h.AddComparisons(1)
		if !h.Checkpoint(event.Range(event.Comparing, 0, len(a)-1)) {
			return stepper.ErrCancelled
		}
	}

	return finishSorted(h, a)
}

func isSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}

	return true
}
