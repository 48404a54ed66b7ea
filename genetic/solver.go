package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/vrpga/distance"
)

// Solver runs one genetic evolution over a fixed distance matrix.
//
// Lifecycle: New validates the configuration, Solve runs the initial
// population plus Options.Generations steps exactly once, and Best, History
// and Stats expose the outcome read-only.
type Solver struct {
	dist    *distance.Matrix
	opts    Options
	n       int
	eval    *Evaluator
	rng     *rand.Rand
	best    Solution
	history []int
	stats   Stats
	solved  bool
}

// New validates dist and opts and prepares a Solver.
//
// Contracts:
//   - dist must be a fully resolved matrix (distance.Matrix.Validate).
//   - opts.Vehicles ≥ 2 and the matrix must hold at least Vehicles cities
//     besides the depot, so that every vehicle can get a non-empty tour.
//   - opts.PopulationSize ≥ 2; see Options for the tuning ranges.
//
// Errors: ErrNilMatrix, distance sentinels (wrapped), ErrTooFewVehicles,
// ErrTooFewCities, ErrPopulationTooSmall, ErrBadOptions.
func New(dist *distance.Matrix, opts Options) (*Solver, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("genetic: distance matrix: %w", err)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	n := dist.Size()
	if n-1 < opts.Vehicles {
		return nil, fmt.Errorf("%d cities besides the depot, %d vehicles: %w", n-1, opts.Vehicles, ErrTooFewCities)
	}
	eval, err := NewEvaluator(dist, opts)
	if err != nil {
		return nil, err
	}

	return &Solver{
		dist:    dist,
		opts:    opts,
		n:       n,
		eval:    eval,
		rng:     NewRand(opts.Seed),
		best:    Solution{Fitness: Invalid},
		history: make([]int, 0, opts.Generations+1),
	}, nil
}

// Solve evolves the population and returns the best route found. The best
// solution only changes on a strictly lower fitness, so among equal scores
// the earliest one is kept. Calling Solve again returns the stored result.
//
// Complexity: O(G·P·L²) dominated by crossover, G = generations,
// P = population size, L = route length.
func (s *Solver) Solve() Solution {
	if s.solved {
		return s.Best()
	}
	s.solved = true

	var (
		size    = s.opts.PopulationSize
		pop     = initPopulation(size, s.n, s.opts.Vehicles, s.rng)
		fitness = make([]int, size)
		gen     int
	)
	s.evaluate(pop, fitness)
	s.record(pop, fitness)
	s.notify(0)

	for gen = 1; gen <= s.opts.Generations; gen++ {
		pop = s.nextGeneration(pop, fitness)
		s.stats.Mutations += mutatePopulation(pop, s.opts.MutationRate, s.rng)
		s.evaluate(pop, fitness)
		s.record(pop, fitness)
		s.stats.Generations++
		s.notify(gen)
	}
	if s.opts.Polish {
		s.polish()
	}
	return s.Best()
}

// Best returns a copy of the best solution found so far. Before Solve it
// holds a nil route and Invalid fitness.
func (s *Solver) Best() Solution {
	return Solution{Route: s.best.Route.Clone(), Fitness: s.best.Fitness}
}

// History returns the running best fitness after the initial population
// (index 0) and after every generation step. It never increases.
func (s *Solver) History() []int {
	return append([]int(nil), s.history...)
}

// Stats returns the work counters of the run.
func (s *Solver) Stats() Stats { return s.stats }

// Evaluator returns the fitness evaluator bound to the solver's matrix and options.
func (s *Solver) Evaluator() *Evaluator { return s.eval }

func (s *Solver) evaluate(pop []Route, fitness []int) {
	for i, r := range pop {
		fitness[i] = s.eval.Fitness(r)
	}
	s.stats.Evaluations += len(pop)
}

// record keeps a copy of the generation's best route if it beats the running
// best. The first minimum wins within a generation.
func (s *Solver) record(pop []Route, fitness []int) {
	bestIdx := 0
	for i := 1; i < len(fitness); i++ {
		if fitness[i] < fitness[bestIdx] {
			bestIdx = i
		}
	}
	if s.best.Route == nil || fitness[bestIdx] < s.best.Fitness {
		s.best = Solution{Route: pop[bestIdx].Clone(), Fitness: fitness[bestIdx]}
	}
	s.history = append(s.history, s.best.Fitness)
}

// polish replaces the best route by its 2-opt improvement when that scores
// lower. The last history entry follows the replacement.
func (s *Solver) polish() {
	route := Polish(s.best.Route, s.dist)
	fitness := s.eval.Fitness(route)
	if fitness >= s.best.Fitness {
		return
	}
	s.stats.PolishGain = s.best.Fitness - fitness
	s.best = Solution{Route: route, Fitness: fitness}
	s.history[len(s.history)-1] = fitness
}

func (s *Solver) notify(gen int) {
	if s.opts.OnGeneration != nil {
		s.opts.OnGeneration(gen, s.best.Fitness)
	}
}
