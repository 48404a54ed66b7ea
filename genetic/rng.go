// Package genetic - deterministic random streams shared by the initializer, crossover,
// mutation and selection.
//
// math/rand/v2.Rand is NOT goroutine-safe. Every Solver owns exactly one
// stream; parallel runs derive independent seeds with DeriveSeed.
package genetic

import "math/rand/v2"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// pcgStream is the fixed PCG increment selector; the seed alone picks the stream.
const pcgStream uint64 = 0xda3e39cb94b95bdb

// NewRand returns the deterministic PCG-backed generator used by a Solver
// seeded with seed (seed==0 ⇒ defaultRNGSeed).
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so that runs 0, 1, 2, … of one parent seed get
// decorrelated streams. The result is never 0.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return defaultRNGSeed
	}
	return int64(x)
}
