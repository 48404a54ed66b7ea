package genetic

import "fmt"

// Weights combines the two fitness terms. Both are percentages and must add
// up to 100: fitness = (Distance*total + Balance*penalty) / 100.
type Weights struct {
	Distance int `yaml:"distance" json:"distance"`
	Balance  int `yaml:"balance" json:"balance"`
}

// Options configures a Solver.
//
// Fields:
//   - Vehicles       - number of vehicles V (≥ 2).
//   - PopulationSize - routes per generation (≥ 2).
//   - Generations    - generation steps after the initial population (≥ 0).
//   - MutationRate   - per-route probability of one swap, in [0, 1].
//   - Weights        - distance / balance weighting (percent, sum 100).
//   - BalanceScale   - multiplier applied to the mean per-vehicle deviation.
//   - Seed           - PRNG seed; 0 selects a fixed default.
//   - Polish         - run 2-opt inside each tour of the final best route
//     (see Polish); kept only if it lowers the fitness.
//   - OnGeneration   - optional hook called after the initial population
//     (gen == 0) and after every generation step with the
//     running best fitness. It runs on the Solver's goroutine.
type Options struct {
	Vehicles       int
	PopulationSize int
	Generations    int
	MutationRate   float64
	Weights        Weights
	BalanceScale   int
	Seed           int64
	Polish         bool
	OnGeneration   func(gen int, best int)
}

// DefaultOptions returns the tuning used by the command-line tool.
//
// Defaults:
//   - Vehicles:       5
//   - PopulationSize: 300
//   - Generations:    200
//   - MutationRate:   0.1
//   - Weights:        {Distance: 30, Balance: 70}
//   - BalanceScale:   10
//   - Seed:           0 (fixed default stream)
//   - Polish:         false
func DefaultOptions() Options {
	return Options{
		Vehicles:       5,
		PopulationSize: 300,
		Generations:    200,
		MutationRate:   0.1,
		Weights:        Weights{Distance: 30, Balance: 70},
		BalanceScale:   10,
	}
}

// validateOptions checks Options without looking at the matrix.
// Error priority: vehicles → population → generations → mutation rate →
// scoring (weights, scale).
func validateOptions(opts Options) error {
	if opts.Vehicles < 2 {
		return fmt.Errorf("vehicles=%d: %w", opts.Vehicles, ErrTooFewVehicles)
	}
	if opts.PopulationSize < 2 {
		return fmt.Errorf("population=%d: %w", opts.PopulationSize, ErrPopulationTooSmall)
	}
	if opts.Generations < 0 {
		return fmt.Errorf("generations=%d: %w", opts.Generations, ErrBadOptions)
	}
	// NaN fails both comparisons and is rejected as well.
	if !(opts.MutationRate >= 0 && opts.MutationRate <= 1) {
		return fmt.Errorf("mutation rate=%v: %w", opts.MutationRate, ErrBadOptions)
	}
	return validateScoring(opts)
}

// validateScoring checks the fields an Evaluator depends on.
func validateScoring(opts Options) error {
	if opts.Vehicles < 2 {
		return fmt.Errorf("vehicles=%d: %w", opts.Vehicles, ErrTooFewVehicles)
	}
	if opts.Weights.Distance < 0 || opts.Weights.Balance < 0 ||
		opts.Weights.Distance+opts.Weights.Balance != 100 {
		return fmt.Errorf("weights=%+v: %w", opts.Weights, ErrBadOptions)
	}
	if opts.BalanceScale < 0 {
		return fmt.Errorf("balance scale=%d: %w", opts.BalanceScale, ErrBadOptions)
	}
	return nil
}
