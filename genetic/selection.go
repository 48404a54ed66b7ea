package genetic

import (
	"cmp"
	"slices"
)

// rankByFitness returns the population indices ordered by ascending fitness.
// Only the index permutation is sorted, routes are never copied. The sort is
// unstable but deterministic for a given input.
//
// Complexity: O(P log P).
func rankByFitness(fitness []int) []int {
	order := make([]int, len(fitness))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(fitness[a], fitness[b])
	})
	return order
}

// nextGeneration builds the population of the next generation:
//
//  1. rank routes by fitness;
//  2. the best P/2 routes survive unchanged in slots 0..P/2-1 (ownership is
//     moved, the previous generation is discarded);
//  3. every slot P/2..P-1 receives the crossover child of two distinct
//     survivors drawn uniformly (the same survivor twice only when P/2 == 1).
//
// Fitness of the new population is not computed here.
//
// Contracts:
//   - len(fitness) == len(pop) ≥ 2; fitness[i] scores pop[i].
//   - pop is consumed: its elite routes move into the result and the rest are
//     dropped, so callers must not reuse pop afterwards.
//
// Notes:
//   - Invalid routes sort last and are never elites while a valid route exists.
//   - A crossover error can only come from a defective survivor; the father is
//     then copied so the slot still holds a valid route.
//
// Complexity: O(P log P + (P/2)·L²) time, O(P) extra space besides the children.
func (s *Solver) nextGeneration(pop []Route, fitness []int) []Route {
	var (
		size   = len(pop)
		half   = size / 2
		order  = rankByFitness(fitness)
		next   = make([]Route, size)
		i      int
		a, b   int
		child  Route
		repair bool
		err    error
	)
	// 1) Elites: move the best half by handle, no copying.
	for i = 0; i < half; i++ {
		next[i] = pop[order[i]]
	}
	// 2) Offspring: fill the remaining slots from random survivor pairs.
	for i = half; i < size; i++ {
		a, b = s.pickParents(half)
		child, repair, err = crossover(next[a], next[b], s.n, s.rng)
		if err != nil {
			// Survivors are valid by construction; keep the father if not.
			child = next[a].Clone()
		}
		// 3) Bookkeeping for Stats.
		if repair {
			s.stats.Repaired++
		}
		s.stats.Offspring++
		next[i] = child
	}
	return next
}

// pickParents draws two distinct survivor indices in [0, half), retrying on
// collision.
func (s *Solver) pickParents(half int) (int, int) {
	if half < 2 {
		return 0, 0
	}
	a := s.rng.IntN(half)
	b := s.rng.IntN(half)
	for a == b {
		b = s.rng.IntN(half)
	}
	return a, b
}
