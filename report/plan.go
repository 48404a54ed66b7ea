package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
)

// ErrNamesMismatch indicates a name list that does not cover the matrix.
var ErrNamesMismatch = errors.New("report: city names do not match the matrix")

// Vehicle is the tour of one vehicle.
type Vehicle struct {
	Number   int      `json:"vehicle"`  // 1-based
	Distance int      `json:"distance"` // depot to depot
	Stops    []int    `json:"stops"`    // city indices, depot excluded
	Path     []string `json:"path"`     // depot, stop names, depot; empty when Stops is
}

// Plan is the decoded best solution.
type Plan struct {
	Depot    string    `json:"depot"`
	Total    int       `json:"total_distance"`
	Fitness  int       `json:"fitness"`
	Route    string    `json:"route"`
	Vehicles []Vehicle `json:"vehicles"`
}

// Build decodes sol into a Plan. names[i] is the display name of city i and
// vehicles is the vehicle count the route was solved for.
//
// Errors: ErrNamesMismatch; genetic.ErrStructuralDefect (via *DefectError)
// if the route is not valid for the matrix.
func Build(sol genetic.Solution, names []string, dist *distance.Matrix, vehicles int) (Plan, error) {
	if dist == nil {
		return Plan{}, genetic.ErrNilMatrix
	}
	n := dist.Size()
	if len(names) != n {
		return Plan{}, fmt.Errorf("%d names for %d cities: %w", len(names), n, ErrNamesMismatch)
	}
	if err := genetic.ValidateRoute(sol.Route, n, vehicles); err != nil {
		return Plan{}, err
	}

	depot := sol.Route[0]
	plan := Plan{
		Depot:    names[depot],
		Fitness:  sol.Fitness,
		Route:    sol.Route.String(),
		Vehicles: make([]Vehicle, 0, vehicles),
	}
	for k, stops := range sol.Route.Tours() {
		v := Vehicle{Number: k + 1, Stops: stops}
		if len(stops) > 0 {
			prev := depot
			v.Path = append(v.Path, names[depot])
			for _, c := range stops {
				v.Distance += dist.At(prev, c)
				v.Path = append(v.Path, names[c])
				prev = c
			}
			v.Distance += dist.At(prev, depot)
			v.Path = append(v.Path, names[depot])
		}
		plan.Total += v.Distance
		plan.Vehicles = append(plan.Vehicles, v)
	}
	return plan, nil
}
