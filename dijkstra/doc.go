// Package dijkstra computes single-source shortest paths on the road network
// of a VRP instance.
//
// Vertices are dense integer indices 0..V-1 (the city indices used by the
// distance matrix); roads are undirected edges with non-negative integer
// lengths. The loader uses Dijkstra from every source to fill in distances
// between cities that have no direct road.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E), O(E) heap entries worst case (lazy decrease-key).
//   - AllPairs: V runs, O(V·(V + E) log V).
//
// Options:
//
//   - Source:           index of the starting vertex (must be in range).
//   - ReturnPath:       if true, return the predecessor slice.
//   - MaxDistance:      vertices farther than this are not explored.
//   - InfEdgeThreshold: edges with length >= this value are impassable.
//
// Example usage:
//
//	g := dijkstra.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 3)
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[2], dijkstra.PathTo(prev, 0, 2)) // 7 [0 1 2]
package dijkstra
