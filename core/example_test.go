package core_test

import (
	"fmt"

	"github.com/katalvlaran/hamcircuit/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty undirected graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices 1, 2, 3) and one isolated vertex.
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.AddVertex(4)

	// 3) Inspect vertices and adjacency.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Edge 2-1 exists?", g.HasEdge(2, 1))
	nbs, _ := g.Neighbors(4)
	fmt.Println("Neighbors of 4:", nbs)

	// Output:
	// Vertices: [1 2 3 4]
	// Edges: 3
	// Edge 2-1 exists? true
	// Neighbors of 4: []
}
