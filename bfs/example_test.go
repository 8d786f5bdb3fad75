package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex i*3+j is cell (i, j); the visit order follows Manhattan distance.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph(core.WithVertices(9))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(i*3+j, i*3+j+1, 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(i*3+j, (i+1)*3+j, 1)
			}
		}
	}

	res, err := bfs.BFS(nil, g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleKahn orders a small build pipeline.
func ExampleKahn() {
	g := core.NewGraph(core.WithDirected(true), core.WithVertices(4))
	_ = g.AddEdge(0, 1, 1) // fetch -> compile
	_ = g.AddEdge(0, 2, 1) // fetch -> lint
	_ = g.AddEdge(1, 3, 1) // compile -> package
	_ = g.AddEdge(2, 3, 1) // lint -> package

	order, _ := bfs.Kahn(nil, g)
	fmt.Println(order)
	// Output:
	// [0 1 2 3]
}
