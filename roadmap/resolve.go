package roadmap

import (
	"fmt"

	"github.com/katalvlaran/vrpga/dijkstra"
	"github.com/katalvlaran/vrpga/distance"
)

// ResolveOptions controls how the distance matrix is built.
type ResolveOptions struct {
	// FillMissing replaces every entry by the shortest road distance, so that
	// pairs without a direct road become usable.
	FillMissing bool
}

// Resolved is a network together with its distance matrix.
type Resolved struct {
	Network *Network
	Matrix  *distance.Matrix
	prev    [][]int // per-source predecessor tables; nil without FillMissing
}

// Resolve builds the distance matrix of n.
//
// Without FillMissing the matrix holds the direct roads only (the shortest
// one for parallel roads) and distance.Unknown elsewhere.
//
// Errors: ErrNoCities; ErrUnreachable when FillMissing finds two cities with
// no road path between them; dijkstra or distance sentinels (wrapped).
//
// Complexity: O(R + N²) direct, O(N·(N+R) log N) with FillMissing.
func (n *Network) Resolve(opts ResolveOptions) (*Resolved, error) {
	if n == nil || len(n.Cities) == 0 {
		return nil, ErrNoCities
	}
	size := len(n.Cities)
	m, err := distance.New(size)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %w", err)
	}
	for _, r := range n.Roads {
		if m.IsKnown(r.A, r.B) && m.At(r.A, r.B) <= r.Distance {
			continue
		}
		if err = m.Set(r.A, r.B, r.Distance); err != nil {
			return nil, fmt.Errorf("roadmap: road %s-%s: %w", n.Cities[r.A].Name, n.Cities[r.B].Name, err)
		}
	}
	res := &Resolved{Network: n, Matrix: m}
	if !opts.FillMissing {
		return res, nil
	}

	g := dijkstra.NewGraph(size)
	for _, r := range n.Roads {
		if err = g.AddEdge(r.A, r.B, int64(r.Distance)); err != nil {
			return nil, fmt.Errorf("roadmap: %w", err)
		}
	}
	dist, prev, err := dijkstra.AllPairs(g)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %w", err)
	}

	var i, j int
	for i = 0; i < size; i++ {
		for j = i + 1; j < size; j++ {
			if dist[i][j] == dijkstra.Unreachable {
				return nil, fmt.Errorf("%s to %s: %w", n.Cities[i].Name, n.Cities[j].Name, ErrUnreachable)
			}
			if err = m.Set(i, j, int(dist[i][j])); err != nil {
				return nil, fmt.Errorf("roadmap: %w", err)
			}
		}
	}
	res.prev = prev
	return res, nil
}

// Leg returns the cities driven through from a to b, both ends included.
// With FillMissing this is the shortest road path; otherwise it is the direct
// road. nil if a and b are not connected or out of range.
func (r *Resolved) Leg(a, b int) []int {
	size := r.Matrix.Size()
	if a < 0 || a >= size || b < 0 || b >= size {
		return nil
	}
	if a == b {
		return []int{a}
	}
	if r.prev != nil {
		return dijkstra.PathTo(r.prev[a], a, b)
	}
	if r.Matrix.IsKnown(a, b) {
		return []int{a, b}
	}
	return nil
}
