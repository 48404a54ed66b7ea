package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, Unreachable if v cannot be reached
//     (or lies beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     NoPredecessor for the source and unreachable vertices.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be in range (ErrVertexNotFound).
//  3. MaxDistance ≥ 0 (ErrBadMaxDistance), InfEdgeThreshold > 0 (ErrBadInfThreshold).
//
// Edge lengths are validated by Graph.AddEdge, so no negative edge can reach here.
func Dijkstra(g *Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.Order() {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, ErrBadMaxDistance
	}
	if cfg.InfEdgeThreshold <= 0 {
		return nil, nil, ErrBadInfThreshold
	}

	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// AllPairs runs Dijkstra from every vertex. Row s of the returned tables holds
// the distances and predecessors for source s.
//
// Complexity: O(V·(V + E) log V) time, O(V²) space.
func AllPairs(g *Graph) ([][]int64, [][]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	var (
		n    = g.Order()
		dist = make([][]int64, n)
		prev = make([][]int, n)
		s    int
		err  error
	)
	for s = 0; s < n; s++ {
		dist[s], prev[s], err = Dijkstra(g, Source(s), WithReturnPath())
		if err != nil {
			return nil, nil, err
		}
	}
	return dist, prev, nil
}

// PathTo rebuilds the vertex sequence source → … → target from a predecessor
// slice returned with WithReturnPath. It returns nil when target is
// unreachable or out of range.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) || source < 0 || source >= len(prev) {
		return nil
	}
	if source == target {
		return []int{source}
	}
	var path []int
	for v := target; v != NoPredecessor; v = prev[v] {
		path = append(path, v)
		if v == source {
			break
		}
		if len(path) > len(prev) {
			return nil
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source with distance 0.
func (r *runner) init() {
	var v int
	for v = range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex until the heap is
// empty or the closest candidate lies beyond MaxDistance.
func (r *runner) process() {
	var item nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)

		// Stale heap entry.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	var (
		e       Edge
		newDist int64
	)
	for _, e = range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist (lazy decrease-key: stale
// entries stay in the heap and are skipped when popped).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
