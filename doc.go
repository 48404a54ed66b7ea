// Package vrpga plans tours for a fleet of vehicles that share one depot,
// using a genetic algorithm that trades total distance against an even
// workload per vehicle.
//
// 🚚 What is in the box?
//
//	• Input: city/road text files, shortest-path fill-in for missing roads
//	• Core: route encoding, fitness, inversion-sequence crossover, mutation,
//	  elitist selection, best tracking
//	• Fork-join runner: independent seeded runs, global best, run statistics
//	• Output: text/JSON plans, route and convergence plots, Prometheus metrics
//
// Packages:
//
//	distance/  - dense symmetric distance matrix + validation
//	dijkstra/  - int-indexed shortest paths (fill-in for missing roads)
//	roadmap/   - city(...)/road(...) loader, matrix resolution, road legs
//	genetic/   - the solver: Route, Evaluator, Crossover, Solver
//	runner/    - parallel independent runs (errgroup, zap, montanaflynn/stats)
//	report/    - per-vehicle plan, text and JSON rendering
//	visualize/ - gonum/plot route map and convergence curve
//	metrics/   - Prometheus collectors, text-file export
//	config/    - YAML run configuration
//	cmd/vrpga  - command-line tool
//
// Route encoding, for the depot 0, cities 1..4 and two vehicles:
//
//	[0 3 1 | 4 2]   vehicle 1: 0 → 3 → 1 → 0,  vehicle 2: 0 → 4 → 2 → 0
//
// See the genetic package for the algorithm and its invariants.
package vrpga
