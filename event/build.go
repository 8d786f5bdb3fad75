package event

// Constructors for the common shapes. They keep algorithm bodies short and make
// the emitted sequences uniform across packages.

// Compared reports a comparison between buffer positions.
func Compared(idx ...int) Event {
	return Event{Kind: Compare, Target: Buffer, Mark: Comparing, Indices: idx}
}

// Swapped reports an exchange of buffer positions i and j, carrying the values
// after the exchange.
func Swapped(i, j, vi, vj int) Event {
	return Event{Kind: Swap, Target: Buffer, Indices: []int{i, j}, Values: []int{vi, vj}}
}

// Written reports value v committed to position i of target.
func Written(target Target, i, v int) Event {
	return Event{Kind: Commit, Target: target, Indices: []int{i}, Values: []int{v}}
}

// Marked highlights positions of the buffer with mark m.
func Marked(m Mark, idx ...int) Event {
	return Event{Kind: Highlight, Target: Buffer, Mark: m, Indices: idx}
}

// Range highlights the inclusive buffer range [lo, hi] with mark m.
// An empty range (lo > hi) yields an event with no indices.
func Range(m Mark, lo, hi int) Event {
	var idx []int
	if hi >= lo {
		idx = make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			idx = append(idx, i)
		}
	}

	return Event{Kind: Highlight, Target: Buffer, Mark: m, Indices: idx}
}

// Visited reports that graph vertex v was reached.
func Visited(v int, label string) Event {
	return Event{Kind: Visit, Target: Graph, Mark: Active, Indices: []int{v}, Label: label}
}

// Cell reports value v committed to DP table cell (row, col).
func Cell(row, col int, v int64) Event {
	return Event{Kind: Commit, Target: Table, Indices: []int{row, col}, Values: []int{int(v)}}
}
