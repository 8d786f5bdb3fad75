// Package search implements the instrumented linear and binary searches.
//
// Both return the index of an element equal to target, or NotFound. Each probe
// is one counted comparison and one checkpoint carrying the probed value and
// the target in Values. Searches never modify their input.
package search

import (
	"errors"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// NotFound is the index reported when target is absent.
const NotFound = -1

// LabelNotFound tags the final highlight of an unsuccessful search.
const LabelNotFound = "not-found"

// ErrUnsorted is returned by Binary when its input is not in ascending order.
var ErrUnsorted = errors.New("search: input is not sorted")

// probe counts one comparison of a[i] against target and suspends on it.
func probe(h *stepper.Handle, a []int, i, target int) bool {
	h.AddComparisons(1)

	return h.Checkpoint(event.Event{
		Kind:    event.Compare,
		Target:  event.Buffer,
		Mark:    event.Comparing,
		Indices: []int{i},
		Values:  []int{a[i], target},
	})
}

// found highlights the match at i.
func found(h *stepper.Handle, i int) (int, error) {
	if !h.Checkpoint(event.Marked(event.Sorted, i)) {
		return NotFound, stepper.ErrCancelled
	}

	return i, nil
}

func notFound(h *stepper.Handle) (int, error) {
	ev := event.Marked(event.Clear)
	ev.Label = LabelNotFound
	if !h.Checkpoint(ev) {
		return NotFound, stepper.ErrCancelled
	}

	return NotFound, nil
}

// Linear scans a from the left and returns the first index holding target.
//
// Complexity: O(n).
func Linear(h *stepper.Handle, a []int, target int) (int, error) {
	for i := range a {
		if !probe(h, a, i, target) {
			return NotFound, stepper.ErrCancelled
		}
		if a[i] == target {
			return found(h, i)
		}
	}

	return notFound(h)
}

// Binary searches the ascending slice a for target. Each iteration highlights
// the active window [lo, hi], probes mid = ⌊(lo+hi)/2⌋ and halves the window.
// The search reports NotFound once lo > hi; mid therefore never leaves
// [0, len(a)-1].
//
// Complexity: O(log n) probes, plus an O(n) sortedness check up front.
func Binary(h *stepper.Handle, a []int, target int) (int, error) {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return NotFound, ErrUnsorted
		}
	}

	lo, hi := 0, len(a)-1
	for lo <= hi {
		if !h.Checkpoint(event.Range(event.Active, lo, hi)) {
			return NotFound, stepper.ErrCancelled
		}
		mid := lo + (hi-lo)/2
		if !probe(h, a, mid, target) {
			return NotFound, stepper.ErrCancelled
		}
		switch {
		case a[mid] == target:
			return found(h, mid)
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return notFound(h)
}
