package visualize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/vrpga/report"
	"github.com/katalvlaran/vrpga/roadmap"
	"github.com/katalvlaran/vrpga/visualize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cities = []roadmap.City{
	{Name: "Depot", X: 0, Y: 0},
	{Name: "A", X: 1, Y: 2},
	{Name: "B", X: 3, Y: 1},
	{Name: "C", X: -2, Y: 1},
}

func samplePlan() report.Plan {
	return report.Plan{
		Depot: "Depot",
		Total: 12,
		Vehicles: []report.Vehicle{
			{Number: 1, Distance: 8, Stops: []int{1, 2}},
			{Number: 2, Distance: 4, Stops: []int{3}},
		},
	}
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRoutes_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.png")
	require.NoError(t, visualize.Routes(cities, samplePlan(), nil, path))
	requireFile(t, path)
}

func TestRoutes_SVGWithLegs(t *testing.T) {
	var calls int
	leg := func(a, b int) []int {
		calls++
		if a == 0 && b == 2 {
			return []int{0, 1, 2}
		}
		return nil
	}
	path := filepath.Join(t.TempDir(), "routes.svg")
	require.NoError(t, visualize.Routes(cities, samplePlan(), leg, path))
	requireFile(t, path)
	// Three hops for vehicle 1, two for vehicle 2.
	assert.Equal(t, 5, calls)
}

func TestRoutes_Errors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, visualize.Routes(nil, samplePlan(), nil, filepath.Join(dir, "a.png")), visualize.ErrNoCities)

	plan := samplePlan()
	plan.Vehicles[1].Stops = []int{9}
	assert.ErrorIs(t, visualize.Routes(cities, plan, nil, filepath.Join(dir, "b.png")), visualize.ErrBadStop)
}

func TestConvergence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, visualize.Convergence([][]int{{30, 25, 25, 20}, {40, 22, 21, 21}}, path))
	requireFile(t, path)

	assert.ErrorIs(t, visualize.Convergence([][]int{nil}, path), visualize.ErrNoHistory)
}
