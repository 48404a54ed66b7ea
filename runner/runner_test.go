package runner_test

import (
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
	"github.com/katalvlaran/vrpga/metrics"
	"github.com/katalvlaran/vrpga/runner"
)

// gridMatrix spreads n cities on a 4-wide grid with Manhattan distances.
func gridMatrix(t *testing.T, n int) *distance.Matrix {
	t.Helper()
	m, err := distance.New(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := i%4 - j%4
			dy := i/4 - j/4
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			require.NoError(t, m.Set(i, j, 10*(dx+dy)))
		}
	}
	return m
}

func testConfig() runner.Config {
	opts := genetic.DefaultOptions()
	opts.Vehicles = 3
	opts.PopulationSize = 30
	opts.Generations = 20
	return runner.Config{Threads: 2, Runs: 4, Seed: 9, Options: opts}
}

func TestRun_PicksGlobalBest(t *testing.T) {
	dist := gridMatrix(t, 12)
	res, err := runner.Run(dist, testConfig())
	require.NoError(t, err)

	require.Len(t, res.Runs, 4)
	for i, r := range res.Runs {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, genetic.DeriveSeed(9, uint64(i)), r.Seed)
		require.NoError(t, genetic.ValidateRoute(r.Best.Route, 12, 3))
		assert.GreaterOrEqual(t, r.Best.Fitness, res.Best.Fitness)
		assert.Nil(t, r.History)
	}
	assert.Equal(t, res.Runs[res.BestRun].Best, res.Best)
	for i := 0; i < res.BestRun; i++ {
		assert.Greater(t, res.Runs[i].Best.Fitness, res.Best.Fitness, "tie must go to the lowest run index")
	}

	assert.Equal(t, float64(res.Best.Fitness), res.Summary.Min)
	assert.LessOrEqual(t, res.Summary.Min, res.Summary.Median)
	assert.LessOrEqual(t, res.Summary.Median, res.Summary.Max)
	assert.GreaterOrEqual(t, res.Summary.StdDev, 0.0)
	assert.NotEqual(t, uuid.Nil, res.ID)
}

// TestRun_IndependentOfThreads checks that the pool size does not change
// any run's outcome.
func TestRun_IndependentOfThreads(t *testing.T) {
	dist := gridMatrix(t, 10)

	cfg := testConfig()
	cfg.Threads = 1
	serial, err := runner.Run(dist, cfg)
	require.NoError(t, err)

	cfg.Threads = 4
	parallel, err := runner.Run(dist, cfg)
	require.NoError(t, err)

	require.Len(t, parallel.Runs, len(serial.Runs))
	for i := range serial.Runs {
		assert.Equal(t, serial.Runs[i].Best, parallel.Runs[i].Best)
	}
	assert.Equal(t, serial.Best, parallel.Best)
	assert.Equal(t, serial.BestRun, parallel.BestRun)
}

func TestRun_Defaults(t *testing.T) {
	cfg := testConfig()
	cfg.Threads, cfg.Runs = 3, 0
	res, err := runner.Run(gridMatrix(t, 8), cfg)
	require.NoError(t, err)
	assert.Len(t, res.Runs, 3)
}

func TestRun_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Threads = -1
	_, err := runner.Run(gridMatrix(t, 8), cfg)
	assert.ErrorIs(t, err, runner.ErrBadConfig)

	cfg = testConfig()
	cfg.Options.Vehicles = 20
	_, err = runner.Run(gridMatrix(t, 8), cfg)
	assert.ErrorIs(t, err, genetic.ErrTooFewCities)

	_, err = runner.Run(nil, testConfig())
	assert.ErrorIs(t, err, genetic.ErrNilMatrix)
}

func TestRun_HistoryMetricsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := metrics.New()

	var hooked atomic.Int64
	cfg := testConfig()
	cfg.KeepHistory = true
	cfg.Logger = zap.New(core)
	cfg.Metrics = m
	cfg.Options.OnGeneration = func(int, int) { hooked.Add(1) }

	res, err := runner.Run(gridMatrix(t, 12), cfg)
	require.NoError(t, err)

	perRun := int64(cfg.Options.Generations + 1)
	assert.Equal(t, perRun*int64(cfg.Runs), hooked.Load())
	for _, r := range res.Runs {
		require.Len(t, r.History, cfg.Options.Generations+1)
		assert.Equal(t, r.Best.Fitness, r.History[len(r.History)-1])
	}

	assert.Equal(t, float64(cfg.Runs), testutil.ToFloat64(m.Runs.WithLabelValues(metrics.StatusOK)))
	assert.Equal(t, float64(cfg.Runs*cfg.Options.Generations), testutil.ToFloat64(m.Generations))
	assert.Equal(t, float64(res.Best.Fitness), testutil.ToFloat64(m.BestFitness))

	assert.Equal(t, cfg.Runs, logs.FilterMessage("run finished").Len())
	assert.Equal(t, 1, logs.FilterMessage("solve finished").Len())
	assert.Equal(t, int(perRun)*cfg.Runs, logs.FilterMessage("generation").Len())
}
