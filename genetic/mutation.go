package genetic

import "math/rand/v2"

// mutatePopulation gives every route, independently with probability rate,
// one random legal swap (see swapStops). It returns the number of routes
// that were selected for mutation.
//
// One Float64 draw is taken per route even when rate is 0, so the stream
// position after a generation does not depend on how many routes mutated.
//
// Complexity: O(P) expected.
func mutatePopulation(pop []Route, rate float64, rng *rand.Rand) int {
	var count int
	for _, r := range pop {
		if rng.Float64() <= rate && rate > 0 {
			swapStops(r, rng)
			count++
		}
	}
	return count
}

// swapStops swaps two positions of r drawn from [1, len(r)), redrawing until
// the swap leaves no separator at position 0, 1 or last and no separator
// next to another separator. The depot at position 0 never moves; drawing
// the same position twice is an accepted no-op.
//
// Termination: a valid route always admits a legal swap (two cities, or a
// position with itself), so the loop ends with probability 1.
//
// Complexity: O(1) expected per attempt, O(1) space.
func swapStops(r Route, rng *rand.Rand) {
	if len(r) < 3 {
		return
	}
	var first, second int
	for {
		// 1) Draw two positions past the depot.
		first = 1 + rng.IntN(len(r)-1)
		second = 1 + rng.IntN(len(r)-1)
		// 2) Swap tentatively.
		r[first], r[second] = r[second], r[first]
		// 3) Keep it only if both touched positions are still legal.
		if legalAt(r, first) && legalAt(r, second) {
			return
		}
		// 4) Undo and redraw.
		r[first], r[second] = r[second], r[first]
	}
}

// legalAt reports whether the element at position p respects the separator
// placement rules. Cities are always legal.
func legalAt(r Route, p int) bool {
	if r[p] != Separator {
		return true
	}
	if p <= 1 || p >= len(r)-1 {
		return false
	}
	return r[p-1] != Separator && r[p+1] != Separator
}
