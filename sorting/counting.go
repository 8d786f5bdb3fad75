package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Labels distinguishing the two auxiliary arrays of counting sort.
const (
	LabelCount  = "count"
	LabelOutput = "output"
)

// Counting sorts non-negative integers by key counting.
// See CountingBy for the phases and errors.
func Counting(h *stepper.Handle, a []int, opts ...Option) error {
	return CountingBy(h, a, func(v int) int { return v }, opts...)
}

// CountingBy stably sorts items by key(item) in four phases:
//
//  1. count the occurrences of each key;
//  2. prefix-sum the counts into end positions;
//  3. place items into an output array, walking the input in reverse so that
//     equal keys keep their input order;
//  4. copy the output back.
//
// Keys must lie in [0, MaxKey] (ErrNegativeValue, ErrDomainTooLarge); the
// input is untouched when validation fails. Phases 1-3 only touch auxiliary
// arrays (event.Aux, labelled LabelCount/LabelOutput). The copy-back counts one
// swap per element and, once started, always completes.
//
// Complexity: O(n + k) time and memory, k = largest key.
func CountingBy[T any](h *stepper.Handle, items []T, key func(T) int, opts ...Option) error {
	// 1) Validate the key domain.
	if key == nil {
		return ErrNilKey
	}
	o := buildOptions(opts)
	if len(items) == 0 {
		return nil
	}
	keys := make([]int, len(items))
	hi := 0
	for i, it := range items {
		k := key(it)
		if k < 0 {
			return fmt.Errorf("%w: %d at index %d", ErrNegativeValue, k, i)
		}
		if k > o.MaxKey {
			return fmt.Errorf("%w: %d > %d", ErrDomainTooLarge, k, o.MaxKey)
		}
		keys[i] = k
		hi = max(hi, k)
	}

	// 2) Count.
	count := make([]int, hi+1)
	for i, k := range keys {
		count[k]++
		if !h.Checkpoint(aux(LabelCount, k, count[k], i)) {
			return stepper.ErrCancelled
		}
	}

	// 3) Prefix sums: count[k] becomes one past the last slot of key k.
	for k := 1; k <= hi; k++ {
		count[k] += count[k-1]
		if !h.Checkpoint(aux(LabelCount, k, count[k], -1)) {
			return stepper.ErrCancelled
		}
	}

	// 4) Stable placement from the back.
	out := make([]T, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		k := keys[i]
		count[k]--
		out[count[k]] = items[i]
		if !h.Checkpoint(aux(LabelOutput, count[k], k, i)) {
			return stepper.ErrCancelled
		}
	}

	// 5) Copy back; only the checkpoints stop on cancellation.
	for i := range out {
		items[i] = out[i]
		if h.Cancelled() {
			continue
		}
		h.AddSwaps(1)
		h.Suspend(event.Written(event.Buffer, i, key(out[i])))
	}
	if h.Cancelled() {
		return stepper.ErrCancelled
	}

	return nil
}

// aux builds a commit to an auxiliary array slot. src, when non-negative, is
// the buffer position that caused it and is appended to Indices.
func aux(label string, slot, v, src int) event.Event {
	ev := event.Written(event.Aux, slot, v)
	ev.Label = label
	if src >= 0 {
		ev.Indices = append(ev.Indices, src)
	}

	return ev
}
