package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(core.WithVertices(3))
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	res, err := dijkstra.Dijkstra(nil, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist=%v path to 2=%v\n", res.Dist, res.PathTo(2))
	// Output: dist=[0 1 3] path to 2=[0 1 2]
}
