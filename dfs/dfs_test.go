package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
	"github.com/katalvlaran/algostep/stepper"
)

// build creates a graph of n vertices with the given unit-weight edges.
func build(t *testing.T, directed bool, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithVertices(n))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(nil, build(t, false, 2, nil), 5)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	// 0 → 1 → 3, 0 → 2
	g := build(t, true, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}})

	res, err := dfs.DFS(nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Visit)
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2}, res.Depth)
	assert.Equal(t, []int{-1, 0, 0, 1}, res.Parent)
}

func TestDFS_UndirectedCycle(t *testing.T) {
	g := build(t, false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := dfs.DFS(nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Visit)
}

func TestDFS_Options(t *testing.T) {
	g := build(t, true, 5, [][2]int{{0, 1}, {1, 2}, {3, 4}})

	res, err := dfs.DFS(nil, g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Visit)

	res, err = dfs.DFS(nil, g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Visit)

	res, err = dfs.DFS(nil, g, 0, dfs.WithFilterNeighbor(func(id int) bool { return id != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Visit)
	assert.Equal(t, 1, res.SkippedNeighbors)

	var exits []int
	_, err = dfs.DFS(nil, g, 0, dfs.WithOnExit(func(id int) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, exits)

	boom := errors.New("boom")
	_, err = dfs.DFS(nil, g, 0, dfs.WithOnVisit(func(id int) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_EventsAndCancellation(t *testing.T) {
	g := build(t, true, 3, [][2]int{{0, 1}, {0, 2}})

	full := stepper.Collect(func(h *stepper.Handle) error {
		_, err := dfs.DFS(h, g, 0)
		return err
	})
	require.NoError(t, full.Err)
	var labels []string
	for _, ev := range full.Events {
		labels = append(labels, ev.Label)
	}
	assert.Equal(t, []string{
		dfs.LabelVisit,
		dfs.LabelEdge, dfs.LabelVisit, dfs.LabelFinish,
		dfs.LabelEdge, dfs.LabelVisit, dfs.LabelFinish,
		dfs.LabelFinish,
	}, labels)
	assert.Equal(t, 2, full.Counters.Comparisons)

	for limit := 0; limit < len(full.Events); limit++ {
		tr := stepper.CollectN(func(h *stepper.Handle) error {
			_, err := dfs.DFS(h, g, 0)
			return err
		}, limit)
		assert.ErrorIs(t, tr.Err, stepper.ErrCancelled)
	}
}

func TestTopologicalSort(t *testing.T) {
	g := build(t, true, 6, [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}})

	order, err := dfs.TopologicalSort(nil, g)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 2, 3, 1, 0}, order)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil, nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(nil, build(t, false, 2, [][2]int{{0, 1}}))
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	_, err = dfs.TopologicalSort(nil, build(t, true, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestFindCycle(t *testing.T) {
	cycle, ok := dfs.FindCycle(build(t, true, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}}))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 1}, cycle)

	_, ok = dfs.FindCycle(build(t, true, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}))
	assert.False(t, ok, "a DAG")

	_, ok = dfs.FindCycle(build(t, false, 3, [][2]int{{0, 1}, {1, 2}}))
	assert.False(t, ok, "an undirected path")

	cycle, ok = dfs.FindCycle(build(t, false, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}))
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 0}, cycle)

	loops := core.NewGraph(core.WithDirected(true), core.WithVertices(1), core.WithLoops())
	require.NoError(t, loops.AddEdge(0, 0, 1))
	cycle, ok = dfs.FindCycle(loops)
	require.True(t, ok)
	assert.Equal(t, []int{0, 0}, cycle)

	_, ok = dfs.FindCycle(nil)
	assert.False(t, ok)
}
