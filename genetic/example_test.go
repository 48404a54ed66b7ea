package genetic_test

import (
	"fmt"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
)

// ExampleSolver evolves routes for two vehicles over five cities on a line.
// The exact route depends on the random stream, so only structural facts are
// printed.
func ExampleSolver() {
	rows := [][]int{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	}
	dist, err := distance.FromRows(rows)
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := genetic.DefaultOptions()
	opts.Vehicles = 2
	opts.PopulationSize = 20
	opts.Generations = 10

	solver, err := genetic.New(dist, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	best := solver.Solve()

	fmt.Println("valid:", genetic.ValidateRoute(best.Route, dist.Size(), opts.Vehicles) == nil)
	fmt.Println("tours:", len(best.Route.Tours()))
	// Output:
	// valid: true
	// tours: 2
}
