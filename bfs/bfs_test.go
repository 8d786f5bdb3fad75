package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/core"
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

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, false, 1, nil)
	_, err = bfs.BFS(nil, g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(nil, g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleAndDepths covers a simple undirected cycle 0-1-2-3-0.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := build(t, false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := bfs.BFS(nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestBFS_DirectedUnreachable(t *testing.T) {
	g := build(t, true, 3, [][2]int{{1, 0}, {1, 2}})

	res, err := bfs.BFS(nil, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, -1, res.Depth[1])
	_, err = res.PathTo(2)
	assert.Error(t, err)
}

func TestBFS_OptionsAndHooks(t *testing.T) {
	g := build(t, false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	res, err := bfs.BFS(nil, g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(nil, g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(nil, g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_EventsAndCounters(t *testing.T) {
	g := build(t, false, 3, [][2]int{{0, 1}, {0, 2}})

	var res *bfs.BFSResult
	tr := stepper.Collect(func(h *stepper.Handle) error {
		var err error
		res, err = bfs.BFS(h, g, 0)
		return err
	})
	require.NoError(t, tr.Err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	// Undirected: 0 examines two edges, 1 and 2 examine one each.
	assert.Equal(t, 4, tr.Counters.Comparisons)

	var labels []string
	for _, ev := range tr.Events {
		labels = append(labels, ev.Label)
	}
	assert.Equal(t, []string{
		bfs.LabelEnqueue, bfs.LabelVisit,
		bfs.LabelEdge, bfs.LabelEnqueue, bfs.LabelEdge, bfs.LabelEnqueue,
		bfs.LabelVisit, bfs.LabelEdge,
		bfs.LabelVisit, bfs.LabelEdge,
	}, labels)
}

func TestBFS_Cancelled(t *testing.T) {
	g := build(t, false, 3, [][2]int{{0, 1}, {1, 2}})
	tr := stepper.CollectN(func(h *stepper.Handle) error {
		_, err := bfs.BFS(h, g, 0)
		return err
	}, 3)
	assert.ErrorIs(t, tr.Err, stepper.ErrCancelled)
	assert.Len(t, tr.Events, 3)
}

func TestKahn(t *testing.T) {
	g := build(t, true, 6, [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}})

	order, err := bfs.Kahn(nil, g)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 2, 0, 3, 1}, order)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d->%d", e.From, e.To)
	}
}

func TestKahn_Errors(t *testing.T) {
	_, err := bfs.Kahn(nil, nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Kahn(nil, build(t, false, 2, [][2]int{{0, 1}}))
	assert.ErrorIs(t, err, bfs.ErrNotDirected)

	order, err := bfs.Kahn(nil, build(t, true, 3, [][2]int{{0, 1}, {1, 2}, {2, 1}}))
	assert.ErrorIs(t, err, bfs.ErrCycleDetected)
	assert.Equal(t, []int{0}, order)
}
