package dp

import (
	"slices"

	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// LCS finds a longest common subsequence of a and b, compared rune by rune.
//
// Algorithm Outline:
//  1. Allocate an (n+1)×(m+1) table T with row 0 and column 0 zero.
//  2. For i = 1..n, j = 1..m: compare a[i-1] with b[j-1] (counted);
//     T[i][j] = T[i-1][j-1]+1 on a match, else max(T[i-1][j], T[i][j-1]);
//     commit Cell(i, j).
//  3. Trace back from (n, m): on a match step diagonally and highlight the
//     cell ("match"); otherwise move up when T[i-1][j] >= T[i][j-1], else left.
//
// Complexity: O(n·m) time and memory.
func LCS(h *stepper.Handle, a, b string) (*LCSResult, error) {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	res := &LCSResult{Table: make([][]int, n+1)}
	for i := range res.Table {
		res.Table[i] = make([]int, m+1)
	}
	t := res.Table

	// Fill.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			h.AddComparisons(1)
			switch {
			case ra[i-1] == rb[j-1]:
				t[i][j] = t[i-1][j-1] + 1
			case t[i-1][j] >= t[i][j-1]:
				t[i][j] = t[i-1][j]
			default:
				t[i][j] = t[i][j-1]
			}
			if !h.Checkpoint(event.Cell(i, j, int64(t[i][j]))) {
				return res, stepper.ErrCancelled
			}
		}
	}
	res.Length = t[n][m]

	// Trace back.
	seq := make([]rune, 0, res.Length)
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case ra[i-1] == rb[j-1]:
			seq = append(seq, ra[i-1])
			if !h.Checkpoint(tableMark(i, j, LabelMatch)) {
				return res, stepper.ErrCancelled
			}
			i, j = i-1, j-1
		case t[i-1][j] >= t[i][j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(seq)
	res.Sequence = string(seq)

	return res, nil
}
