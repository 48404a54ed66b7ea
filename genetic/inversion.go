package genetic

import "fmt"

// InversionSequence maps a permutation of 1..K to its inversion sequence:
// inv[v-1] is the number of elements greater than v that appear before v.
// The mapping is a bijection between permutations of 1..K and sequences with
// 0 ≤ inv[i] ≤ K-1-i, which is what makes single-point crossover on inversion
// sequences always decode to a valid permutation.
//
// Example: perm [3 1 2] → inv [1 1 0].
//
// Errors: ErrNotPermutation if perm is not a permutation of 1..K.
//
// Complexity: O(K²) time, O(K) space.
func InversionSequence(perm []int) ([]int, error) {
	var (
		k   = len(perm)
		pos = make([]int, k+1)
		i   int
		v   int
	)
	for i = range pos {
		pos[i] = -1
	}
	for i, v = range perm {
		if v < 1 || v > k || pos[v] != -1 {
			return nil, fmt.Errorf("value %d at %d: %w", v, i, ErrNotPermutation)
		}
		pos[v] = i
	}

	inv := make([]int, k)
	for v = 1; v <= k; v++ {
		for i = 0; i < pos[v]; i++ {
			if perm[i] > v {
				inv[v-1]++
			}
		}
	}
	return inv, nil
}

// PermutationFromInversions is the inverse of InversionSequence. Positions
// are resolved from the last value down to the first: value i+1 starts at
// position inv[i], and every already placed greater value whose position is
// at or after it shifts one to the right.
//
// Errors: ErrBadInversions if some inv[i] is outside [0, K-1-i].
//
// Complexity: O(K²) time, O(K) space.
func PermutationFromInversions(inv []int) ([]int, error) {
	var (
		k         = len(inv)
		positions = make([]int, k)
		i, j      int
	)
	for i = k - 1; i >= 0; i-- {
		if inv[i] < 0 || inv[i] > k-1-i {
			return nil, fmt.Errorf("inv[%d]=%d: %w", i, inv[i], ErrBadInversions)
		}
		positions[i] = inv[i]
		for j = i + 1; j < k; j++ {
			if positions[j] >= positions[i] {
				positions[j]++
			}
		}
	}

	perm := make([]int, k)
	for i = 0; i < k; i++ {
		perm[positions[i]] = i + 1
	}
	return perm, nil
}
