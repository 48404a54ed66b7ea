package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
	"github.com/katalvlaran/vrpga/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sep = genetic.Separator

var names = []string{"Depot", "A", "B", "C"}

func line4(t *testing.T) *distance.Matrix {
	t.Helper()
	m, err := distance.FromRows([][]int{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	})
	require.NoError(t, err)
	return m
}

func TestBuild(t *testing.T) {
	sol := genetic.Solution{Route: genetic.Route{0, 1, 2, sep, 3}, Fitness: 10}
	plan, err := report.Build(sol, names, line4(t), 2)
	require.NoError(t, err)

	assert.Equal(t, "Depot", plan.Depot)
	assert.Equal(t, 10, plan.Total)
	assert.Equal(t, 10, plan.Fitness)
	assert.Equal(t, "0 1 2 | 3", plan.Route)
	require.Len(t, plan.Vehicles, 2)
	assert.Equal(t, report.Vehicle{
		Number:   1,
		Distance: 4,
		Stops:    []int{1, 2},
		Path:     []string{"Depot", "A", "B", "Depot"},
	}, plan.Vehicles[0])
	assert.Equal(t, 6, plan.Vehicles[1].Distance)
}

func TestBuild_Errors(t *testing.T) {
	sol := genetic.Solution{Route: genetic.Route{0, 1, 2, sep, 3}}

	_, err := report.Build(sol, names[:3], line4(t), 2)
	assert.ErrorIs(t, err, report.ErrNamesMismatch)

	_, err = report.Build(sol, names, line4(t), 3)
	assert.ErrorIs(t, err, genetic.ErrStructuralDefect)

	_, err = report.Build(sol, names, nil, 2)
	assert.ErrorIs(t, err, genetic.ErrNilMatrix)
}

func TestWriteText(t *testing.T) {
	sol := genetic.Solution{Route: genetic.Route{0, 1, 2, sep, 3}, Fitness: 10}
	plan, err := report.Build(sol, names, line4(t), 2)
	require.NoError(t, err)
	plan.Vehicles = append(plan.Vehicles, report.Vehicle{Number: 3})

	var buf bytes.Buffer
	require.NoError(t, plan.WriteText(&buf))
	assert.Equal(t,
		"Total distance of all vehicles: 10\n"+
			"Vehicle 1 (4): Depot -> A -> B -> Depot\n"+
			"Vehicle 2 (6): Depot -> C -> Depot\n"+
			"Vehicle 3 (0)\n",
		buf.String())
}

func TestWriteJSON(t *testing.T) {
	sol := genetic.Solution{Route: genetic.Route{0, 1, 2, sep, 3}, Fitness: 10}
	plan, err := report.Build(sol, names, line4(t), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plan.WriteJSON(&buf))

	var back report.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, plan, back)
	assert.Contains(t, buf.String(), `"total_distance": 10`)
}
