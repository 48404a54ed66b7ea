package dijkstra

import "fmt"

// Edge is one directed half of an undirected road.
type Edge struct {
	To     int
	Weight int64
}

// Graph is an undirected weighted adjacency list over vertices 0..V-1.
// It is not synchronized; build it once and then run queries.
type Graph struct {
	adj [][]Edge
}

// NewGraph returns a graph with n isolated vertices (n < 0 is treated as 0).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{adj: make([][]Edge, n)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// AddEdge adds the undirected road u–v with length w. Parallel roads are
// kept; Dijkstra naturally uses the shortest one.
//
// Errors: ErrVertexNotFound, ErrNegativeWeight.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: edge %d–%d", ErrVertexNotFound, u, v)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	if u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	}
	return nil
}

// Neighbors returns the edges leaving u. The slice is owned by the graph.
func (g *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}
