package sorting_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/stepper"
)

type sortFunc func(h *stepper.Handle, a []int) error

// sorts lists every sort in its deterministic, terminating configuration.
var sorts = map[string]sortFunc{
	"bubble":    func(h *stepper.Handle, a []int) error { return sorting.Bubble(h, a) },
	"selection": sorting.Selection,
	"insertion": sorting.Insertion,
	"quick":     sorting.Quick,
	"merge":     sorting.Merge,
	"counting":  func(h *stepper.Handle, a []int) error { return sorting.Counting(h, a) },
}

func randomSlice(r *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.IntN(20) // small domain forces duplicates
	}

	return a
}

func TestSorts_SortedPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	inputs := [][]int{nil, {1}, {2, 1}, {1, 2, 3, 4}, {4, 3, 2, 1}, {3, 3, 3}}
	for i := 0; i < 20; i++ {
		inputs = append(inputs, randomSlice(r, 1+r.IntN(30)))
	}

	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				a := slices.Clone(in)
				want := slices.Clone(in)
				slices.Sort(want)

				tr := stepper.Collect(func(h *stepper.Handle) error { return sortFn(h, a) })
				require.NoError(t, tr.Err)
				assert.Equal(t, want, a, "input %v", in)
			}
		})
	}
}

func TestSorts_NilHandle(t *testing.T) {
	for name, sortFn := range sorts {
		a := []int{9, 4, 7, 1, 4}
		require.NoError(t, sortFn(nil, a), name)
		assert.Equal(t, []int{1, 4, 4, 7, 9}, a, name)
	}
}

// Every cancellation point must leave a permutation of the input behind.
func TestSorts_CancellationLeavesPermutation(t *testing.T) {
	in := []int{7, 2, 9, 2, 5, 1, 8, 3}
	want := slices.Sorted(slices.Values(in))

	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			full := stepper.Collect(func(h *stepper.Handle) error { return sortFn(h, slices.Clone(in)) })
			require.NoError(t, full.Err)

			for limit := 0; limit < len(full.Events); limit++ {
				a := slices.Clone(in)
				tr := stepper.CollectN(func(h *stepper.Handle) error { return sortFn(h, a) }, limit)
				require.ErrorIs(t, tr.Err, stepper.ErrCancelled, "limit %d", limit)
				assert.Equal(t, want, slices.Sorted(slices.Values(a)), "limit %d left %v", limit, a)
			}
		})
	}
}

// The closing sorted pass returns nil when it completes and ErrCancelled
// when it is interrupted, after the slice is already in order.
func TestSorts_FinalSortedPassResult(t *testing.T) {
	cases := map[string]sortFunc{
		"insertion": sorting.Insertion,
		"merge":     sorting.Merge,
		"bogo": func(h *stepper.Handle, a []int) error {
			return sorting.Bogo(h, a, sorting.WithSeed(3))
		},
	}
	in := []int{4, 1, 3, 2}

	for name, sortFn := range cases {
		t.Run(name, func(t *testing.T) {
			full := stepper.Collect(func(h *stepper.Handle) error { return sortFn(h, slices.Clone(in)) })
			require.NoError(t, full.Err)
			last := full.Events[len(full.Events)-1]
			require.Equal(t, event.Sorted, last.Mark)

			a := slices.Clone(in)
			tr := stepper.CollectN(func(h *stepper.Handle) error { return sortFn(h, a) }, len(full.Events)-1)
			require.ErrorIs(t, tr.Err, stepper.ErrCancelled)
			assert.Equal(t, []int{1, 2, 3, 4}, a)
		})
	}
}

func TestBubble_Example(t *testing.T) {
	a := []int{5, 3, 8, 1}
	tr := stepper.Collect(func(h *stepper.Handle) error {
		return sorting.Bubble(h, a, sorting.WithEarlyExit(false))
	})
	require.NoError(t, tr.Err)

	assert.Equal(t, []int{1, 3, 5, 8}, a)
	assert.Equal(t, stepper.Counters{Comparisons: 6, Swaps: 4}, tr.Counters)

	var passes int
	for _, ev := range tr.Events {
		if ev.Kind == event.Highlight && ev.Mark == event.Sorted && len(ev.Indices) == 1 && ev.Indices[0] > 0 {
			passes++
		}
	}
	assert.Equal(t, 3, passes)
}

func TestBubble_EarlyExit(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Bubble(h, a) })
	require.NoError(t, tr.Err)
	assert.Equal(t, 4, tr.Counters.Comparisons, "one pass over sorted input")
	assert.Zero(t, tr.Counters.Swaps)

	tr = stepper.Collect(func(h *stepper.Handle) error {
		return sorting.Bubble(h, a, sorting.WithEarlyExit(false))
	})
	assert.Equal(t, 10, tr.Counters.Comparisons)
}

func TestSelection_PivotMarks(t *testing.T) {
	a := []int{3, 1, 2}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Selection(h, a) })
	require.NoError(t, tr.Err)

	var pivots [][]int
	for _, ev := range tr.Events {
		if ev.Mark == event.Pivot {
			pivots = append(pivots, ev.Indices)
		}
	}
	// Pass 0: start at 0, new minimum at 1. Pass 1: start at 1, new minimum at 2.
	assert.Equal(t, [][]int{{0}, {1}, {1}, {2}}, pivots)
	assert.Equal(t, 2, tr.Counters.Swaps)
}

func TestInsertion_ShiftsCountAsSwaps(t *testing.T) {
	a := []int{4, 3, 2, 1}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Insertion(h, a) })
	require.NoError(t, tr.Err)
	assert.Equal(t, []int{1, 2, 3, 4}, a)
	assert.Equal(t, 6, tr.Counters.Swaps, "one shift per inversion")
	assert.Equal(t, 6, tr.Counters.Comparisons)
}

func TestQuick_PivotIsLastElement(t *testing.T) {
	a := []int{3, 1, 2}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Quick(h, a) })
	require.NoError(t, tr.Err)
	require.NotEmpty(t, tr.Events)

	first := tr.Events[0]
	assert.Equal(t, event.Pivot, first.Mark)
	assert.Equal(t, []int{2}, first.Indices)
}

func TestMerge_EndsWithSortedPass(t *testing.T) {
	a := []int{2, 1, 3}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Merge(h, a) })
	require.NoError(t, tr.Err)

	tail := tr.Events[len(tr.Events)-3:]
	for i, ev := range tail {
		assert.Equal(t, event.Sorted, ev.Mark)
		assert.Equal(t, []int{i}, ev.Indices)
	}
}

type tagged struct {
	key int
	tag string
}

func TestCountingBy_Stable(t *testing.T) {
	items := []tagged{{2, "a"}, {1, "b"}, {2, "c"}, {0, "d"}, {1, "e"}, {2, "f"}}
	tr := stepper.Collect(func(h *stepper.Handle) error {
		return sorting.CountingBy(h, items, func(x tagged) int { return x.key })
	})
	require.NoError(t, tr.Err)

	var tags string
	for _, it := range items {
		tags += it.tag
	}
	assert.Equal(t, "dbeacf", tags)
	assert.Equal(t, len(items), tr.Counters.Swaps)
	assert.Zero(t, tr.Counters.Comparisons)
}

func TestCounting_Validation(t *testing.T) {
	a := []int{3, -1, 2}
	err := sorting.Counting(nil, a)
	assert.ErrorIs(t, err, sorting.ErrNegativeValue)
	assert.Equal(t, []int{3, -1, 2}, a, "input untouched")

	err = sorting.Counting(nil, []int{1, 100}, sorting.WithMaxKey(50))
	assert.ErrorIs(t, err, sorting.ErrDomainTooLarge)

	err = sorting.CountingBy[int](nil, []int{1}, nil)
	assert.ErrorIs(t, err, sorting.ErrNilKey)
}

func TestCounting_AuxiliaryPhasesLeaveBufferAlone(t *testing.T) {
	a := []int{2, 0, 1}
	tr := stepper.Collect(func(h *stepper.Handle) error { return sorting.Counting(h, a) })
	require.NoError(t, tr.Err)

	// 3 counts, 2 prefix sums, 3 placements, 3 copy-backs.
	require.Len(t, tr.Events, 11)
	for _, ev := range tr.Events[:8] {
		assert.Equal(t, event.Aux, ev.Target)
	}
	for i, ev := range tr.Events[8:] {
		assert.Equal(t, event.Buffer, ev.Target)
		assert.Equal(t, []int{i}, ev.Indices)
	}
}

func TestBogo(t *testing.T) {
	a := []int{3, 1, 2}
	tr := stepper.Collect(func(h *stepper.Handle) error {
		return sorting.Bogo(h, a, sorting.WithSeed(42))
	})
	require.NoError(t, tr.Err)
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Positive(t, tr.Counters.Comparisons, "one check per shuffle")
	assert.Equal(t, 2*tr.Counters.Comparisons, tr.Counters.Swaps, "n-1 swaps per shuffle")

	sorted := []int{1, 2}
	tr = stepper.Collect(func(h *stepper.Handle) error { return sorting.Bogo(h, sorted) })
	require.NoError(t, tr.Err)
	assert.Zero(t, tr.Counters.Swaps, "sorted input is never shuffled")
}

func TestBogo_PassLimit(t *testing.T) {
	a := make([]int, 12)
	for i := range a {
		a[i] = len(a) - i
	}
	err := sorting.Bogo(nil, a, sorting.WithSeed(1), sorting.WithMaxPasses(3))
	assert.ErrorIs(t, err, sorting.ErrPassLimit)
	assert.Len(t, a, 12)
}
