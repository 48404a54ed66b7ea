package runner

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
	"github.com/katalvlaran/vrpga/metrics"
)

// ErrBadConfig indicates negative thread or run counts.
var ErrBadConfig = errors.New("runner: invalid configuration")

// Config describes one parallel solve.
//
// Threads bounds the number of runs executing at once (≤ 0 selects
// runtime.NumCPU()). Runs is the number of independent runs (≤ 0 selects
// Threads). Run i uses genetic.DeriveSeed(Seed, i); Options.Seed is ignored.
// Options.OnGeneration, if set, is called from every run's goroutine.
type Config struct {
	Threads     int
	Runs        int
	Seed        int64
	Options     genetic.Options
	KeepHistory bool // keep per-generation best fitness of every run
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

// RunResult is the outcome of one run.
type RunResult struct {
	Index    int
	Seed     int64
	Best     genetic.Solution
	Stats    genetic.Stats
	Duration time.Duration
	History  []int // nil unless Config.KeepHistory
}

// Summary describes the spread of the best fitness over all runs.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

// Result is the outcome of Run.
type Result struct {
	ID       uuid.UUID
	Best     genetic.Solution
	BestRun  int
	Runs     []RunResult
	Summary  Summary
	Duration time.Duration
}

// Run solves dist Runs times with at most Threads runs in flight.
//
// The configuration is validated once before any goroutine starts, so a bad
// Options value is reported as the error of genetic.New.
//
// Steps:
//  1. Normalize Threads/Runs and the logger; validate once with genetic.New.
//  2. Fork: each run builds its own Solver with DeriveSeed(Seed, i) and writes
//     only results[i].
//  3. Join: errgroup.Wait is the single barrier.
//  4. Scan results for the lowest fitness (first index wins) and summarize.
//
// Errors: ErrBadConfig, genetic and distance sentinels (wrapped).
//
// Complexity: Runs × one Solve, at most Threads in flight; O(Runs) for the scan.
func Run(dist *distance.Matrix, cfg Config) (Result, error) {
	cfg, err := normalize(cfg)
	if err != nil {
		return Result{}, err
	}
	if _, err = genetic.New(dist, cfg.Options); err != nil {
		return Result{}, err
	}

	var (
		id      = newID()
		log     = cfg.Logger.With(zap.String("solve", id.String()))
		results = make([]RunResult, cfg.Runs)
		g       errgroup.Group
		start   = time.Now()
	)
	log.Info("solve started",
		zap.Int("runs", cfg.Runs),
		zap.Int("threads", cfg.Threads),
		zap.Int("cities", dist.Size()),
		zap.Int("vehicles", cfg.Options.Vehicles),
		zap.Int("population", cfg.Options.PopulationSize),
		zap.Int("generations", cfg.Options.Generations),
	)

	// Fork.
	g.SetLimit(cfg.Threads)
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			res, err := runOne(dist, cfg, i, log)
			if err != nil {
				cfg.Metrics.ObserveFailure()
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	// Join.
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	best := pickBest(results)
	summary, err := summarize(results)
	if err != nil {
		return Result{}, err
	}
	out := Result{
		ID:       id,
		Best:     results[best].Best,
		BestRun:  best,
		Runs:     results,
		Summary:  summary,
		Duration: time.Since(start),
	}
	cfg.Metrics.SetBest(out.Best.Fitness)
	log.Info("solve finished",
		zap.Int("best_fitness", out.Best.Fitness),
		zap.Int("best_run", best),
		zap.Float64("mean_fitness", summary.Mean),
		zap.Duration("elapsed", out.Duration),
	)
	return out, nil
}

func normalize(cfg Config) (Config, error) {
	if cfg.Threads < 0 || cfg.Runs < 0 {
		return cfg, fmt.Errorf("threads=%d runs=%d: %w", cfg.Threads, cfg.Runs, ErrBadConfig)
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	if cfg.Runs == 0 {
		cfg.Runs = cfg.Threads
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg, nil
}

func runOne(dist *distance.Matrix, cfg Config, index int, log *zap.Logger) (RunResult, error) {
	var (
		opts = cfg.Options
		seed = genetic.DeriveSeed(cfg.Seed, uint64(index))
		rlog = log.With(zap.Int("run", index))
		hook = opts.OnGeneration
	)
	opts.Seed = seed
	if rlog.Core().Enabled(zap.DebugLevel) {
		opts.OnGeneration = func(gen, best int) {
			rlog.Debug("generation", zap.Int("gen", gen), zap.Int("best", best))
			if hook != nil {
				hook(gen, best)
			}
		}
	}

	solver, err := genetic.New(dist, opts)
	if err != nil {
		return RunResult{}, err
	}
	start := time.Now()
	best := solver.Solve()
	elapsed := time.Since(start)
	st := solver.Stats()

	cfg.Metrics.ObserveRun(metrics.RunStats{
		Generations: st.Generations,
		Offspring:   st.Offspring,
		Repaired:    st.Repaired,
		Duration:    elapsed,
	})
	rlog.Info("run finished",
		zap.Int64("seed", seed),
		zap.Int("fitness", best.Fitness),
		zap.Int("repaired", st.Repaired),
		zap.Int("polish_gain", st.PolishGain),
		zap.Duration("elapsed", elapsed),
	)

	res := RunResult{
		Index:    index,
		Seed:     seed,
		Best:     best,
		Stats:    st,
		Duration: elapsed,
	}
	if cfg.KeepHistory {
		res.History = solver.History()
	}
	return res, nil
}

// pickBest returns the index of the lowest fitness; the first one wins ties.
func pickBest(results []RunResult) int {
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Best.Fitness < results[best].Best.Fitness {
			best = i
		}
	}
	return best
}

func summarize(results []RunResult) (Summary, error) {
	data := make(stats.Float64Data, len(results))
	for i, r := range results {
		data[i] = float64(r.Best.Fitness)
	}
	var (
		s   Summary
		err error
	)
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("runner: summary: %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("runner: summary: %w", err)
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("runner: summary: %w", err)
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, fmt.Errorf("runner: summary: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("runner: summary: %w", err)
	}
	return s, nil
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
