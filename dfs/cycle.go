package dfs

import (
	"slices"

	"github.com/katalvlaran/algostep/core"
)

// FindCycle reports one cycle of the directed graph g, if any, as the closed
// vertex sequence [v0, v1, ..., v0]. Self-loops count as cycles of length one.
// Undirected graphs are treated as directed in both directions minus the
// trivial u→v→u backtrack. A nil graph is cycle-free.
//
// It does not suspend; builders use it to validate inputs before a run.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	n := g.VertexCount()
	state := make([]int, n)
	path := make([]int, 0, n)
	directed := g.Directed()

	var visit func(id, parent int) []int
	visit = func(id, parent int) []int {
		state[id] = Gray
		path = append(path, id)
		edges, _ := g.Neighbors(id) // id is always a valid vertex here
		for _, e := range edges {
			// skip the trivial undirected backtrack along the tree edge
			if !directed && e.To == parent {
				parent = -1 // a parallel edge still closes a cycle

				continue
			}
			switch state[e.To] {
			case Gray:
				i := slices.Index(path, e.To)
				cycle := slices.Clone(path[i:])

				return append(cycle, e.To)
			case White:
				if c := visit(e.To, id); c != nil {
					return c
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == White {
			if c := visit(v, -1); c != nil {
				return c, true
			}
		}
	}

	return nil, false
}
