package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dijkstra"
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

type wedge struct {
	from, to int
	w        int64
}

func build(t *testing.T, directed bool, n int, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithVertices(n))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

// referenceGraph is the six-vertex directed network used throughout the docs.
func referenceGraph(t *testing.T) *core.Graph {
	return build(t, true, 6, []wedge{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14},
		{1, 2, 10}, {1, 3, 15},
		{2, 3, 11}, {2, 5, 2},
		{3, 4, 6},
		{5, 4, 9},
	})
}

func TestDijkstra_ReferenceGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra(nil, referenceGraph(t))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 7, 9, 20, 20, 11}, res.Dist)
	assert.Equal(t, []int{0, 1, 2, 5, 3, 4}, res.Settled)
	assert.Equal(t, []int{0, 2, 5, 4}, res.PathTo(4))
	assert.Equal(t, []int{0, 2, 3}, res.PathTo(3))
}

func TestDijkstra_SettlesSourceFirst(t *testing.T) {
	tr := stepper.Collect(func(h *stepper.Handle) error {
		_, err := dijkstra.Dijkstra(h, referenceGraph(t))
		return err
	})
	require.NoError(t, tr.Err)

	first := tr.Events[0]
	assert.Equal(t, dijkstra.LabelSettle, first.Label)
	assert.Equal(t, []int{0}, first.Indices)
	assert.Equal(t, event.Sorted, first.Mark)

	var settled int
	for _, ev := range tr.Events {
		if ev.Label == dijkstra.LabelSettle {
			settled++
		}
	}
	assert.Equal(t, 6, settled)
	assert.Equal(t, 9, tr.Counters.Comparisons, "every edge is relaxed once")
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := build(t, true, 3, []wedge{{0, 1, 4}})
	res, err := dijkstra.Dijkstra(nil, g)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, res.Dist[2])
	assert.Nil(t, res.PathTo(2))
	assert.Equal(t, []int{0, 1}, res.Settled)
}

func TestDijkstra_Options(t *testing.T) {
	g := build(t, false, 4, []wedge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 3, 100}})

	res, err := dijkstra.Dijkstra(nil, g, dijkstra.Source(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 0}, res.Dist)

	res, err = dijkstra.Dijkstra(nil, g, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Settled)

	res, err = dijkstra.Dijkstra(nil, g, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Dist[3])
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(nil, build(t, true, 1, nil), dijkstra.Source(4))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(nil, build(t, true, 2, []wedge{{0, 1, -1}}))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.Dijkstra(nil, build(t, true, 1, nil), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Dijkstra(nil, build(t, true, 1, nil), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestDijkstra_Cancelled(t *testing.T) {
	tr := stepper.CollectN(func(h *stepper.Handle) error {
		_, err := dijkstra.Dijkstra(h, referenceGraph(t))
		return err
	}, 5)
	assert.ErrorIs(t, tr.Err, stepper.ErrCancelled)
	assert.Len(t, tr.Events, 5)
}
