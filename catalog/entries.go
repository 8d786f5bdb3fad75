package catalog

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
	"github.com/katalvlaran/algostep/dijkstra"
	"github.com/katalvlaran/algostep/dp"
	"github.com/katalvlaran/algostep/prim_kruskal"
	"github.com/katalvlaran/algostep/search"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/stepper"
	"github.com/katalvlaran/algostep/tree"
)

var registry = map[string][]Entry{
	TopicSorting: {
		{ID: "bogo", Info: Info{"Bogo Sort", "Randomly shuffles the array until it is sorted by chance.", "O((n+1)!) avg, O(∞) worst", "O(1)", "No"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error {
				return sorting.Bogo(h, buf.Array, sorting.WithSeed(buf.Seed))
			})},
		{ID: "bubble", Info: Info{"Bubble Sort", "Repeatedly steps through the list, compares adjacent elements and swaps them if they're in the wrong order.", "O(n²)", "O(1)", "Yes"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Bubble(h, buf.Array) })},
		{ID: "selection", Info: Info{"Selection Sort", "Finds the minimum element and places it at the beginning, then repeats for the rest.", "O(n²)", "O(1)", "No"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Selection(h, buf.Array) })},
		{ID: "insertion", Info: Info{"Insertion Sort", "Builds the sorted array one element at a time by inserting each element in its correct position.", "O(n²)", "O(1)", "Yes"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Insertion(h, buf.Array) })},
		{ID: "quick", Info: Info{"Quick Sort", "Divides the array around a pivot element and recursively sorts the subarrays.", "O(n log n) avg, O(n²) worst", "O(log n)", "No"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Quick(h, buf.Array) })},
		{ID: "merge", Info: Info{"Merge Sort", "Divides the array into halves, sorts them, and merges the sorted halves.", "O(n log n)", "O(n)", "Yes"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Merge(h, buf.Array) })},
		{ID: "counting", Info: Info{"Counting Sort", "Uses a counting array to determine the position of each element, sorting based on frequency.", "O(n + k)", "O(k)", "Yes"},
			bind: sortWith(func(h *stepper.Handle, buf *builder.Buffer) error { return sorting.Counting(h, buf.Array) })},
	},
	TopicSearch: {
		{ID: "linear", Info: Info{"Linear Search", "Checks each element in sequence until the target is found.", "O(n)", "O(1)", "N/A"},
			bind: searchWith(search.Linear, false)},
		{ID: "binary", Info: Info{"Binary Search", "Efficiently finds an item in a sorted array by repeatedly dividing the search interval in half.", "O(log n)", "O(1)", "N/A"},
			bind: searchWith(search.Binary, true)},
	},
	TopicTrees: {
		{ID: "binary-search-tree", Info: Info{"Binary Search Tree", "A node-based binary tree where each node has at most two children with left < parent < right.", "O(log n) avg, O(n) worst", "O(n)", "N/A"},
			bind: treeOf(tree.BST)},
		{ID: "avl-tree", Info: Info{"AVL Tree", "A self-balancing BST where heights of two child subtrees differ by at most one.", "O(log n)", "O(n)", "N/A"},
			bind: treeOf(tree.AVL)},
		{ID: "red-black-tree", Info: Info{"Red-Black Tree", "A self-balancing BST with additional color properties to ensure balance.", "O(log n)", "O(n)", "N/A"},
			bind: treeOf(tree.RedBlack)},
	},
	TopicGraphs: {
		{ID: "bfs", Info: Info{"Breadth-First Search", "Explores all nodes at the present depth before moving to the next depth level.", "O(V + E)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error) {
				res, err := bfs.BFS(h, g, buf.Source)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("visit order %v", res.Order), nil
			})},
		{ID: "dfs", Info: Info{"Depth-First Search", "Explores as far as possible along each branch before backtracking.", "O(V + E)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error) {
				res, err := dfs.DFS(h, g, buf.Source)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("visit order %v", res.Visit), nil
			})},
		{ID: "dijkstra", Info: Info{"Dijkstra's Algorithm", "Finds the shortest paths from a source vertex to all other vertices in a weighted graph.", "O(V² + E)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error) {
				res, err := dijkstra.Dijkstra(h, g, dijkstra.Source(buf.Source))
				if err != nil {
					return "", err
				}
				return "distances " + distances(res.Dist, dijkstra.Inf), nil
			})},
		{ID: "kruskal", Info: Info{"Kruskal's Algorithm", "Finds a minimum spanning tree for a connected weighted graph.", "O(E log E)", "O(V + E)", "N/A"},
			bind: graphWith(true, func(h *stepper.Handle, g *core.Graph, _ *builder.Buffer) (string, error) {
				return mst(prim_kruskal.Kruskal(h, g))
			})},
		{ID: "topologicalSort", Info: Info{"Topological Sort", "Orders vertices in a directed acyclic graph such that if there is an edge from u to v, u appears before v.", "O(V + E)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, _ *builder.Buffer) (string, error) {
				order, err := dfs.TopologicalSort(h, g)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("order %v", order), nil
			})},
		{ID: "prim", Info: Info{"Prim's Algorithm", "Finds a minimum spanning tree for a connected weighted undirected graph by growing a tree from a starting vertex.", "O(V² + E)", "O(V)", "N/A"},
			bind: graphWith(true, func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error) {
				return mst(prim_kruskal.Prim(h, g, buf.Source))
			})},
		{ID: "khan", Info: Info{"Kahn's Algorithm", "Performs a topological sort on a directed acyclic graph using in-degree of vertices.", "O(V + E)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, _ *builder.Buffer) (string, error) {
				order, err := bfs.Kahn(h, g)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("order %v", order), nil
			})},
	},
	TopicDP: {
		{ID: "fibonacci", Info: Info{"Fibonacci Sequence", "Computes the nth Fibonacci number using dynamic programming.", "O(n)", "O(n)", "N/A"},
			bind: func(buf *builder.Buffer) (stepper.Procedure, error) {
				return func(h *stepper.Handle) error {
					f, err := dp.Fibonacci(h, buf.Fibonacci)
					if err != nil {
						return err
					}
					buf.Outcome = fmt.Sprintf("F(%d) = %d", buf.Fibonacci, f[len(f)-1])
					return nil
				}, nil
			}},
		{ID: "knapsack", Info: Info{"0/1 Knapsack", "Solves the problem of selecting items with maximum value within a weight constraint.", "O(nW)", "O(nW)", "N/A"},
			bind: func(buf *builder.Buffer) (stepper.Procedure, error) {
				return func(h *stepper.Handle) error {
					res, err := dp.Knapsack(h, buf.Knapsack.Capacity, buf.Knapsack.Items)
					if err != nil {
						return err
					}
					buf.Outcome = fmt.Sprintf("best value %d with items %v", res.Best, res.Items)
					return nil
				}, nil
			}},
		{ID: "lcs", Info: Info{"Longest Common Subsequence", "Finds the longest subsequence present in two sequences.", "O(mn)", "O(mn)", "N/A"},
			bind: func(buf *builder.Buffer) (stepper.Procedure, error) {
				return func(h *stepper.Handle) error {
					res, err := dp.LCS(h, buf.LCS.A, buf.LCS.B)
					if err != nil {
						return err
					}
					buf.Outcome = fmt.Sprintf("LCS %q (length %d)", res.Sequence, res.Length)
					return nil
				}, nil
			}},
		{ID: "bellmanFord", Info: Info{"Bellman-Ford Algorithm", "Computes shortest paths from a single source vertex to all other vertices, handling negative weights.", "O(VE)", "O(V)", "N/A"},
			bind: graphWith(false, func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error) {
				res, err := dp.BellmanFord(h, g, buf.Source)
				if err != nil {
					return "", err
				}
				if res.NegativeCycle {
					return fmt.Sprintf("negative cycle reachable from %d", buf.Source), nil
				}
				return "distances " + distances(res.Dist, dp.Inf), nil
			})},
	},
}

func init() {
	for topic, list := range registry {
		for i := range list {
			list[i].Topic = topic
		}
	}
}

// sortWith binds a sort over buf.Array.
func sortWith(run func(h *stepper.Handle, buf *builder.Buffer) error) binder {
	return func(buf *builder.Buffer) (stepper.Procedure, error) {
		return func(h *stepper.Handle) error {
			if err := run(h, buf); err != nil {
				return err
			}
			buf.Outcome = fmt.Sprintf("sorted %d values", len(buf.Array))
			return nil
		}, nil
	}
}

// searchWith binds a search for buf.Target. Binary search gets the buffer
// sorted up front, outside the instrumented run.
func searchWith(find func(h *stepper.Handle, a []int, target int) (int, error), presort bool) binder {
	return func(buf *builder.Buffer) (stepper.Procedure, error) {
		if presort {
			slices.Sort(buf.Array)
		}
		return func(h *stepper.Handle) error {
			i, err := find(h, buf.Array, buf.Target)
			if err != nil {
				return err
			}
			if i == search.NotFound {
				buf.Outcome = fmt.Sprintf("%d not found", buf.Target)
			} else {
				buf.Outcome = fmt.Sprintf("found %d at index %d", buf.Target, i)
			}
			return nil
		}, nil
	}
}

// treeOf binds building a tree of kind k from buf.Array.
func treeOf(k tree.Kind) binder {
	return func(buf *builder.Buffer) (stepper.Procedure, error) {
		return func(h *stepper.Handle) error {
			t, err := tree.Build(h, k, buf.Array)
			if err != nil {
				return err
			}
			buf.Outcome = fmt.Sprintf("%s tree: %d keys, height %d", k, t.Len(), t.Height())
			return nil
		}, nil
	}
}

// graphWith binds a graph algorithm over buf.Graph, or over its undirected
// view when undirected is set.
func graphWith(undirected bool, run func(h *stepper.Handle, g *core.Graph, buf *builder.Buffer) (string, error)) binder {
	return func(buf *builder.Buffer) (stepper.Procedure, error) {
		if buf.Graph == nil {
			return nil, fmt.Errorf("%w: no graph", ErrMissingInput)
		}
		g := buf.Graph
		if undirected {
			g = g.Undirected()
		}
		return func(h *stepper.Handle) error {
			out, err := run(h, g, buf)
			if err != nil {
				return err
			}
			buf.Outcome = out
			return nil
		}, nil
	}
}

func mst(res *prim_kruskal.Result, err error) (string, error) {
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("MST weight %d (%d edges)", res.Total, len(res.Edges)), nil
}

// distances renders a distance vector with ∞ for unreachable vertices.
func distances(dist []int64, inf int64) string {
	out := "["
	for i, d := range dist {
		if i > 0 {
			out += " "
		}
		if d == inf {
			out += "∞"
		} else {
			out += fmt.Sprint(d)
		}
	}

	return out + "]"
}
