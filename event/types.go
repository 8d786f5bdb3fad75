// Package event defines the semantic events an instrumented algorithm emits at
// each checkpoint, and the Sink contract through which an observer receives
// them together with run lifecycle notifications.
package event

import (
	"fmt"
	"strings"
)

// Kind classifies what happened at a checkpoint.
type Kind uint8

const (
	// Compare reports that two positions (or a position and a key) were compared.
	Compare Kind = iota + 1
	// Swap reports that two positions exchanged their values.
	Swap
	// Visit reports that a vertex or tree node was reached.
	Visit
	// Highlight changes the display state of positions without mutating data.
	Highlight
	// Commit reports a single value written into a position or table cell.
	Commit
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Visit:
		return "visit"
	case Highlight:
		return "highlight"
	case Commit:
		return "commit"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Target names the structure an event refers to.
type Target uint8

const (
	// Buffer is the primary numeric sequence (sorting, search, tree keys).
	Buffer Target = iota
	// Aux is a secondary array, e.g. the counting-sort histogram.
	Aux
	// Graph refers to vertices (Indices) or edges (pairs of Indices).
	Graph
	// Table refers to a DP table cell addressed by Indices = [row, col].
	Table
	// Tree refers to tree nodes addressed by key.
	Tree
)

// String implements fmt.Stringer.
func (t Target) String() string {
	switch t {
	case Buffer:
		return "buffer"
	case Aux:
		return "aux"
	case Graph:
		return "graph"
	case Table:
		return "table"
	case Tree:
		return "tree"
	default:
		return fmt.Sprintf("target(%d)", uint8(t))
	}
}

// Mark is the display state a Highlight (or Compare/Visit) assigns.
type Mark uint8

const (
	// None leaves the display state untouched.
	None Mark = iota
	// Comparing marks positions under comparison.
	Comparing
	// Pivot marks the current pivot / running minimum / key being placed.
	Pivot
	// Active marks a working range (binary-search window, merge range).
	Active
	// Sorted marks positions known to be final.
	Sorted
	// Clear removes transient marks from the positions.
	Clear
)

// String implements fmt.Stringer.
func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case Comparing:
		return "comparing"
	case Pivot:
		return "pivot"
	case Active:
		return "active"
	case Sorted:
		return "sorted"
	case Clear:
		return "clear"
	default:
		return fmt.Sprintf("mark(%d)", uint8(m))
	}
}

// Event is the payload delivered at a checkpoint.
//
// Indices address positions in Target (array indices, vertex IDs, [row, col]
// for tables, keys for trees). Values carry the numbers relevant to the step,
// e.g. the value written by a Commit or a tentative distance. Label is a short
// free-form tag such as "rotate-left" or "relax".
type Event struct {
	Kind    Kind
	Target  Target
	Mark    Mark
	Indices []int
	Values  []int
	Label   string
}

// String renders a compact, stable representation used by text sinks and tests.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteByte(' ')
	b.WriteString(e.Target.String())
	if e.Mark != None {
		b.WriteString(" [")
		b.WriteString(e.Mark.String())
		b.WriteByte(']')
	}
	if len(e.Indices) > 0 {
		fmt.Fprintf(&b, " at=%v", e.Indices)
	}
	if len(e.Values) > 0 {
		fmt.Fprintf(&b, " val=%v", e.Values)
	}
	if e.Label != "" {
		b.WriteString(" ")
		b.WriteString(e.Label)
	}

	return b.String()
}
