// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in symmetry and totality of the adjacency relation.
//   - Lock in idempotent construction and ascending iteration order.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcircuit/core"
)

// TestGraph_AddVertex verifies AddVertex/HasVertex/VertexCount lifecycle rules.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.VertexCount())
	assert.False(t, g.HasVertex(1))

	g.AddVertex(1)
	assert.True(t, g.HasVertex(1))
	assert.Equal(t, 1, g.VertexCount())

	// Duplicate insert is a no-op.
	g.AddVertex(1)
	assert.Equal(t, 1, g.VertexCount())

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.NotNil(t, nbs)
	assert.Empty(t, nbs)
}

func TestGraph_AddVertex_KeepsExistingEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddVertex(1)

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, nbs)
}

// TestGraph_AddEdge_Symmetric verifies that edges are mirrored and endpoints auto-added.
func TestGraph_AddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(3, 7)

	assert.True(t, g.HasVertex(3))
	assert.True(t, g.HasVertex(7))
	assert.True(t, g.HasEdge(3, 7))
	assert.True(t, g.HasEdge(7, 3))
	assert.Equal(t, 1, g.EdgeCount())

	n3, err := g.Neighbors(3)
	require.NoError(t, err)
	n7, err := g.Neighbors(7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, n3)
	assert.Equal(t, []int{3}, n7)
}

func TestGraph_AddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(5, 5)

	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(5, 5))

	nbs, err := g.Neighbors(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, nbs)
}

// TestGraph_Neighbors_Ascending anchors the deterministic iteration order
// regardless of insertion order.
func TestGraph_Neighbors_Ascending(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{9, -2, 4, 100, 0} {
		g.AddEdge(1, v)
	}

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{-2, 0, 4, 9, 100}, nbs)
	assert.Equal(t, []int{-2, 0, 1, 4, 9, 100}, g.Vertices())
}

func TestGraph_Neighbors_Unknown(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)

	nbs, err := g.Neighbors(2)
	assert.Nil(t, nbs)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Degree(2)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge(2, 1))
}

func TestGraph_Neighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbs[0] = 42

	again, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, again)
}

func TestGraph_AdjacencyList(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddVertex(4)

	adj := g.AdjacencyList()
	assert.Equal(t, map[int][]int{
		1: {2},
		2: {1, 3},
		3: {2},
		4: {},
	}, adj)

	// Snapshot is detached from the live graph.
	g.AddEdge(4, 1)
	assert.Empty(t, adj[4])
}
