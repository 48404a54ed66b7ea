// Command vrpga plans multi-vehicle delivery tours with a genetic algorithm.
//
// Usage:
//
//	vrpga -i cities.txt [-t threads] [-v routes.png] [-c vrpga.yaml] [flags]
//
// Flags given on the command line override the configuration file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/vrpga/config"
	"github.com/katalvlaran/vrpga/metrics"
	"github.com/katalvlaran/vrpga/report"
	"github.com/katalvlaran/vrpga/roadmap"
	"github.com/katalvlaran/vrpga/runner"
	"github.com/katalvlaran/vrpga/visualize"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// flagValues mirrors the overridable configuration fields.
type flagValues struct {
	config, input, plot, convergence, metrics, logLevel string
	threads, runs, vehicles, population, generations    int
	seed                                                int64
	mutation                                            float64
	json, direct, polish                                bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		fv flagValues
		fs = flag.NewFlagSet("vrpga", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)
	fs.StringVar(&fv.config, "c", "", "YAML configuration file")
	fs.StringVar(&fv.config, "config", "", "YAML configuration file")
	fs.StringVar(&fv.input, "i", "", "city/road input file")
	fs.StringVar(&fv.input, "input", "", "city/road input file")
	fs.IntVar(&fv.threads, "t", 0, "parallel runs in flight (0 = CPU count)")
	fs.IntVar(&fv.threads, "threads", 0, "parallel runs in flight (0 = CPU count)")
	fs.StringVar(&fv.plot, "v", "", "write a route plot to this file (.png, .svg)")
	fs.StringVar(&fv.plot, "visualize", "", "write a route plot to this file (.png, .svg)")
	fs.StringVar(&fv.convergence, "convergence", "", "write a best-fitness plot to this file")
	fs.IntVar(&fv.runs, "runs", 0, "independent runs (0 = thread count)")
	fs.Int64Var(&fv.seed, "seed", 0, "base random seed")
	fs.IntVar(&fv.vehicles, "vehicles", 0, "number of vehicles")
	fs.IntVar(&fv.population, "population", 0, "routes per generation")
	fs.IntVar(&fv.generations, "generations", 0, "generation steps")
	fs.Float64Var(&fv.mutation, "mutation", 0, "per-route mutation probability")
	fs.BoolVar(&fv.json, "json", false, "print the plan as JSON")
	fs.BoolVar(&fv.polish, "polish", false, "2-opt each tour of the best route")
	fs.BoolVar(&fv.direct, "direct", false, "use direct roads only, no shortest-path fill-in")
	fs.StringVar(&fv.metrics, "metrics", "", "write Prometheus metrics to this file")
	fs.StringVar(&fv.logLevel, "log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if fv.config != "" {
		var err error
		if cfg, err = config.Load(fv.config); err != nil {
			fmt.Fprintln(stderr, "vrpga:", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) { applyFlag(&cfg, &fv, f.Name) })
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "vrpga:", err)
		return 1
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "vrpga:", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if err = solve(cfg, logger, stdout); err != nil {
		logger.Error("solve failed", zap.Error(err))
		return 1
	}
	return 0
}

func applyFlag(cfg *config.Config, fv *flagValues, name string) {
	switch name {
	case "i", "input":
		cfg.Input = fv.input
	case "t", "threads":
		cfg.Threads = fv.threads
	case "v", "visualize":
		cfg.Plot = fv.plot
	case "convergence":
		cfg.ConvergencePlot = fv.convergence
	case "runs":
		cfg.Runs = fv.runs
	case "seed":
		cfg.Seed = fv.seed
	case "vehicles":
		cfg.Vehicles = fv.vehicles
	case "population":
		cfg.Population = fv.population
	case "generations":
		cfg.Generations = fv.generations
	case "mutation":
		cfg.MutationRate = fv.mutation
	case "json":
		cfg.JSON = fv.json
	case "polish":
		cfg.Polish = fv.polish
	case "direct":
		cfg.FillMissing = !fv.direct
	case "metrics":
		cfg.MetricsFile = fv.metrics
	case "log-level":
		cfg.LogLevel = fv.logLevel
	}
}

// newLogger writes console-encoded entries without timestamps to stderr.
func newLogger(cfg config.Config, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(stderr), lvl)
	return zap.New(core), nil
}

func solve(cfg config.Config, logger *zap.Logger, stdout io.Writer) error {
	net, err := roadmap.Load(cfg.Input)
	if err != nil {
		return err
	}
	resolved, err := net.Resolve(roadmap.ResolveOptions{FillMissing: cfg.FillMissing})
	if err != nil {
		return err
	}
	logger.Info("network loaded",
		zap.String("input", cfg.Input),
		zap.Int("cities", net.Len()),
		zap.Int("roads", len(net.Roads)),
		zap.Bool("fill_missing", cfg.FillMissing),
	)

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}
	result, err := runner.Run(resolved.Matrix, runner.Config{
		Threads:     cfg.Threads,
		Runs:        cfg.Runs,
		Seed:        cfg.Seed,
		Options:     cfg.GeneticOptions(),
		KeepHistory: cfg.ConvergencePlot != "",
		Logger:      logger,
		Metrics:     m,
	})
	if err != nil {
		return err
	}

	plan, err := report.Build(result.Best, net.Names(), resolved.Matrix, cfg.Vehicles)
	if err != nil {
		return err
	}
	if cfg.JSON {
		err = plan.WriteJSON(stdout)
	} else {
		err = plan.WriteText(stdout)
	}
	if err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err = visualize.Routes(net.Cities, plan, resolved.Leg, cfg.Plot); err != nil {
			return err
		}
		logger.Info("route plot written", zap.String("path", cfg.Plot))
	}
	if cfg.ConvergencePlot != "" {
		histories := make([][]int, len(result.Runs))
		for i, r := range result.Runs {
			histories[i] = r.History
		}
		if err = visualize.Convergence(histories, cfg.ConvergencePlot); err != nil {
			return err
		}
		logger.Info("convergence plot written", zap.String("path", cfg.ConvergencePlot))
	}
	if m != nil {
		if err = m.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", zap.String("path", cfg.MetricsFile))
	}
	return nil
}
