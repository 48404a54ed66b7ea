// Package metrics holds the Prometheus collectors of a solve and exports them
// in the text exposition format (for node_exporter's textfile collector or a
// plain scrape of the written file).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Run outcomes used as the "status" label of vrpga_runs_total.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics owns a dedicated registry. All methods are safe for concurrent use
// and are no-ops on a nil *Metrics.
type Metrics struct {
	Registry *prometheus.Registry

	Runs        *prometheus.CounterVec
	Generations prometheus.Counter
	Offspring   prometheus.Counter
	Repaired    prometheus.Counter
	BestFitness prometheus.Gauge
	RunDuration prometheus.Histogram
}

// New creates and registers the collectors, plus the Go runtime collector.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "vrpga_runs_total", Help: "Independent solver runs by outcome."},
			[]string{"status"},
		),
		Generations: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "vrpga_generations_total", Help: "Generation steps completed across all runs."},
		),
		Offspring: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "vrpga_offspring_total", Help: "Children produced by crossover."},
		),
		Repaired: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "vrpga_offspring_repaired_total", Help: "Children whose separators had to be repaired."},
		),
		BestFitness: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "vrpga_best_fitness", Help: "Best fitness over all finished runs (lower is better)."},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "vrpga_run_duration_seconds", Help: "Wall time of one solver run.", Buckets: prometheus.DefBuckets},
		),
	}
	m.Registry.MustRegister(m.Runs, m.Generations, m.Offspring, m.Repaired, m.BestFitness, m.RunDuration)
	m.Registry.MustRegister(collectors.NewGoCollector())
	return m
}

// RunStats is what one finished run reports.
type RunStats struct {
	Generations int
	Offspring   int
	Repaired    int
	Duration    time.Duration
}

// ObserveRun records a successful run.
func (m *Metrics) ObserveRun(s RunStats) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(StatusOK).Inc()
	m.Generations.Add(float64(s.Generations))
	m.Offspring.Add(float64(s.Offspring))
	m.Repaired.Add(float64(s.Repaired))
	m.RunDuration.Observe(s.Duration.Seconds())
}

// ObserveFailure records a run that returned an error.
func (m *Metrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(StatusError).Inc()
}

// SetBest publishes the global best fitness.
func (m *Metrics) SetBest(fitness int) {
	if m == nil {
		return
	}
	m.BestFitness.Set(float64(fitness))
}

// WriteFile writes every registered metric to path in the text format. The
// file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
