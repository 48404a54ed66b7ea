package genetic

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Crossover produces one child from two parent routes over n cities.
//
// Steps:
//  1. Relabel: the k-th separator of each parent (left to right) becomes the
//     synthetic city n+k, so both parents become permutations of 0..L-1.
//  2. Shift values by one and take each parent's inversion sequence.
//  3. Draw a crossover point uniformly in [⌊0.2·L⌋, ⌊0.8·L⌋] (clamped to [1, L-1]).
//  4. Child sequence = father[:point] + mother[point:].
//  5. Decode the child permutation and shift back.
//  6. Synthetic ids ≥ n become separators again.
//  7. Repair illegal separator placement (see repairSeparators).
//
// Both parents must be structurally valid routes of the same length with the
// depot first; the child then is valid too and has the same length.
//
// Errors: ErrLengthMismatch; ErrStructuralDefect if a parent is not a
// relabelable permutation or does not start at the depot.
//
// Complexity: O(L²) time (inversion transforms), O(L) space.
func Crossover(father, mother Route, n int, rng *rand.Rand) (Route, error) {
	if len(father) != len(mother) || len(father) < 2 {
		return nil, fmt.Errorf("father=%d mother=%d: %w", len(father), len(mother), ErrLengthMismatch)
	}
	if father[0] != Depot || mother[0] != Depot {
		return nil, fmt.Errorf("parent does not start at the depot: %w", ErrStructuralDefect)
	}
	child, _, err := crossover(father, mother, n, rng)
	return child, err
}

// crossover is Crossover without the argument checks. The bool reports
// whether the repair step had to move separators.
func crossover(father, mother Route, n int, rng *rand.Rand) (Route, bool, error) {
	size := len(father)
	invFather, err := InversionSequence(relabel(father, n))
	if err != nil {
		return nil, false, fmt.Errorf("father: %w: %w", ErrStructuralDefect, err)
	}
	invMother, err := InversionSequence(relabel(mother, n))
	if err != nil {
		return nil, false, fmt.Errorf("mother: %w: %w", ErrStructuralDefect, err)
	}

	point := crossoverPoint(size, rng)
	invChild := make([]int, size)
	copy(invChild[:point], invFather[:point])
	copy(invChild[point:], invMother[point:])

	perm, err := PermutationFromInversions(invChild)
	if err != nil {
		// Unreachable: every entry comes from a valid sequence of the same length.
		return nil, false, err
	}

	child := make(Route, size)
	for i, v := range perm {
		if v-1 >= n {
			child[i] = Separator
			continue
		}
		child[i] = v - 1
	}

	repaired, changed := repairSeparators(child)
	return repaired, changed, nil
}

// relabel returns a copy of r with the k-th separator replaced by n+k and all
// values shifted by one, i.e. a permutation of 1..len(r) for a valid route.
func relabel(r Route, n int) []int {
	out := make([]int, len(r))
	next := n
	for i, v := range r {
		if v == Separator {
			out[i] = next + 1
			next++
			continue
		}
		out[i] = v + 1
	}
	return out
}

// crossoverPoint draws the split index from the middle 60% of the route.
func crossoverPoint(size int, rng *rand.Rand) int {
	lo := size * 2 / 10
	hi := size * 8 / 10
	point := lo + rng.IntN(hi-lo+1)
	if point < 1 {
		point = 1
	}
	if point > size-1 {
		point = size - 1
	}
	return point
}

// repairSeparators restores legal separator placement without randomness.
//
//  1. Scan left to right; a separator at position 0 or 1 or right after
//     another separator is removed (the tail shifts left) and counted as
//     a deficit.
//  2. Trailing separators are stripped and counted too.
//  3. For every unit of deficit, a separator is inserted at the first
//     position i ≥ 2 with cities at i-1 and i, preferring i below the last
//     index; the last index is used only when nothing earlier qualifies.
//
// The route keeps its length whenever every vehicle can get a city.
// The bool reports whether anything moved.
//
// Complexity: O(L·deficit).
func repairSeparators(child Route) (Route, bool) {
	out := make(Route, 0, len(child))
	deficit := 0
	for _, v := range child {
		if v == Separator && (len(out) < 2 || out[len(out)-1] == Separator) {
			deficit++
			continue
		}
		out = append(out, v)
	}
	for len(out) > 0 && out[len(out)-1] == Separator {
		out = out[:len(out)-1]
		deficit++
	}
	if deficit == 0 {
		return out, false
	}

	var i int
	for ; deficit > 0; deficit-- {
		i = insertionPoint(out)
		if i < 0 {
			break
		}
		out = slices.Insert(out, i, Separator)
	}
	return out, true
}

// insertionPoint returns the first i ≥ 2 where out[i-1] and out[i] are both
// cities, scanning positions before the last index first. -1 if none.
func insertionPoint(out Route) int {
	last := len(out) - 1
	var i int
	for i = 2; i < last; i++ {
		if out[i-1] != Separator && out[i] != Separator {
			return i
		}
	}
	if last >= 2 && out[last-1] != Separator && out[last] != Separator {
		return last
	}
	return -1
}
