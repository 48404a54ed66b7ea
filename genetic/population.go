package genetic

import "math/rand/v2"

// randomRoute draws one structurally valid route for n cities and the given
// vehicle count. The depot is fixed at position 0; positions 1..end are filled
// by drawing without replacement from the other n-1 cities plus vehicles-1
// separators. A draw that puts a separator at position 1, at the end, or next
// to another separator is discarded and redrawn from scratch.
//
// Termination: callers guarantee n-1 ≥ vehicles (see New), so a valid draw
// has positive probability and the loop ends with probability 1.
//
// Complexity: O(L) expected per accepted draw, L = n+vehicles-1.
func randomRoute(n, vehicles int, rng *rand.Rand) Route {
	var (
		size = n + vehicles - 1
		r    = make(Route, size)
		work = make([]int, 0, size-1)
		k    int
		j    int
		s    int
	)
	for {
		work = work[:0]
		for k = 1; k < n; k++ {
			work = append(work, k)
		}
		for k = 0; k < vehicles-1; k++ {
			work = append(work, Separator)
		}

		r[0] = Depot
		s = len(work)
		for j = 1; j < size; j++ {
			k = rng.IntN(s)
			r[j] = work[k]
			work[k] = work[s-1]
			s--
		}
		if !hasSeparatorDefect(r) {
			return r
		}
	}
}

// initPopulation draws size independent routes.
func initPopulation(size, n, vehicles int, rng *rand.Rand) []Route {
	pop := make([]Route, size)
	for i := range pop {
		pop[i] = randomRoute(n, vehicles, rng)
	}
	return pop
}
