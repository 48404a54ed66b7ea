// Package config holds the run configuration of the vrpga command: a YAML
// file, defaults for everything it leaves out, and the conversion to solver
// options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vrpga/genetic"
)

// ErrInvalid indicates a configuration value outside its range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete run configuration.
type Config struct {
	Input           string          `yaml:"input"`
	FillMissing     bool            `yaml:"fill_missing"`
	Threads         int             `yaml:"threads"`
	Runs            int             `yaml:"runs"`
	Seed            int64           `yaml:"seed"`
	Vehicles        int             `yaml:"vehicles"`
	Population      int             `yaml:"population"`
	Generations     int             `yaml:"generations"`
	MutationRate    float64         `yaml:"mutation_rate"`
	Weights         genetic.Weights `yaml:"weights"`
	BalanceScale    int             `yaml:"balance_scale"`
	Polish          bool            `yaml:"polish"`
	Plot            string          `yaml:"plot"`
	ConvergencePlot string          `yaml:"convergence_plot"`
	MetricsFile     string          `yaml:"metrics_file"`
	JSON            bool            `yaml:"json"`
	LogLevel        string          `yaml:"log_level"`
}

// Default returns the configuration used when no file is given. Threads and
// Runs are 0, which the runner resolves to the CPU count.
func Default() Config {
	opts := genetic.DefaultOptions()
	return Config{
		FillMissing:  true,
		Vehicles:     opts.Vehicles,
		Population:   opts.PopulationSize,
		Generations:  opts.Generations,
		MutationRate: opts.MutationRate,
		Weights:      opts.Weights,
		BalanceScale: opts.BalanceScale,
		LogLevel:     "info",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r on top of Default. An empty document yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that belong to the command itself. Solver
// tuning ranges are checked by genetic.New.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file not set: %w", ErrInvalid)
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads=%d: %w", c.Threads, ErrInvalid)
	}
	if c.Runs < 0 {
		return fmt.Errorf("runs=%d: %w", c.Runs, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}

// GeneticOptions converts the tuning fields to solver options.
func (c Config) GeneticOptions() genetic.Options {
	return genetic.Options{
		Vehicles:       c.Vehicles,
		PopulationSize: c.Population,
		Generations:    c.Generations,
		MutationRate:   c.MutationRate,
		Weights:        c.Weights,
		BalanceScale:   c.BalanceScale,
		Seed:           c.Seed,
		Polish:         c.Polish,
	}
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
