// Package runner executes independent genetic solver runs in parallel and
// picks the global best.
//
// Each run gets its own Solver, random stream (seed derived from the base
// seed and the run index) and population; only the distance matrix is shared
// and it is never written. The join is the only synchronization point: after
// all runs finish, a linear scan selects the lowest fitness, ties going to the
// lowest run index. Runs are never cancelled.
package runner
