// Package genetic implements a genetic-algorithm solver for the multi-vehicle
// routing problem (VRP) with a single depot and a fixed vehicle count.
//
// Representation:
//
//	A Route is the encoding of one candidate solution, of length N+(V-1):
//
//	    [ 0 | c c c | SEP | c c | SEP | c c c c ]
//	      ^  vehicle 1        vehicle 2   vehicle 3
//	    depot
//
//	Element 0 is always the depot (city 0). Elements 1..end hold every other
//	city exactly once plus V-1 Separator markers that split the sequence into
//	V non-empty vehicle tours. Every tour implicitly starts and ends at the
//	depot.
//
// Pipeline (one Solver, one goroutine):
//
//	init population → evaluate → { select+crossover → mutate → evaluate →
//	track best } × Generations
//
//   - Fitness:   total distance and a per-vehicle balance penalty; lower is
//     better; structurally defective routes score Invalid.
//   - Crossover: separators are relabeled to synthetic city ids, both parents
//     are mapped to inversion sequences, a single-point crossover is taken in
//     that space and mapped back; a deterministic repair restores legal
//     separator placement.
//   - Mutation:  random swaps that never move the depot and never produce an
//     illegal separator position.
//   - Selection: the best half survives unchanged; the other half is bred from
//     random pairs of survivors.
//   - Polish:    optional 2-opt pass inside each tour of the final best route.
//
// Determinism:
//   - All randomness flows from Options.Seed through a math/rand/v2 PCG
//     stream; seed==0 selects a fixed default seed. The same seed and matrix
//     give the same result on every platform.
//
// Concurrency:
//   - A Solver is not safe for concurrent use. Independent Solvers may share
//     one *distance.Matrix read-only (see package runner).
//
// The package does not log and never panics on user input; configuration
// problems are reported by New as sentinel errors.
package genetic
