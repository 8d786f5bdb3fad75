// Package algostep is an execution engine for watching classic algorithms
// work, one checkpoint at a time.
//
// Every algorithm in the library is ordinary synchronous Go that receives a
// *stepper.Handle and suspends after each unit of work (a comparison, a swap,
// a vertex visit, a table cell), describing it with an event.Event. A
// controller drives one such run at a time: it plays it at a configurable
// speed, pauses it, steps it one checkpoint at a time or cancels it, and
// forwards every event and counter change to an event.Sink.
//
// 🚀 What's inside?
//
//	• Sorting: bogo, bubble, selection, insertion, quick, merge, counting
//	• Search: linear, binary
//	• Trees: binary search tree, AVL, red-black
//	• Graphs: BFS, DFS, Dijkstra, Kruskal, Prim, topological sort (DFS and Kahn)
//	• Dynamic programming: Fibonacci, 0/1 knapsack, LCS, Bellman-Ford
//
// Under the hood, everything is organized by concern:
//
//	stepper/     - the suspension primitive (Handle, Coroutine, Collect)
//	event/       - checkpoint events and the Sink interface
//	core/        - weighted graph used by the graph algorithms
//	sorting/ search/ tree/ bfs/ dfs/ dijkstra/ prim_kruskal/ dp/
//	             - the instrumented algorithms
//	builder/     - input buffers: seeded generator, YAML scenarios, graph constructors
//	catalog/     - (topic, algorithm) lookup and descriptions
//	controller/  - run lifecycle: start, pause, step, reset, pacing, faults
//	metrics/ logging/
//	             - prometheus collectors and the zap-backed logr logger
//	cmd/algostep - terminal front end
//
// Quick example:
//
//	e, _ := catalog.Lookup("sorting", "quick")
//	fn, _ := e.Bind(&builder.Buffer{Array: []int{5, 3, 8, 1}})
//	tr := stepper.Collect(fn) // tr.Events, tr.Counters
//
// Every algorithm also accepts a nil *stepper.Handle and then simply runs to
// completion.
package algostep
