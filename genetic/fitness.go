package genetic

import (
	"fmt"

	"github.com/katalvlaran/vrpga/distance"
)

// Evaluator scores routes against one distance matrix. It holds no mutable
// state, so a single Evaluator may be used from several goroutines.
type Evaluator struct {
	dist     *distance.Matrix
	n        int
	vehicles int
	weights  Weights
	scale    int
}

// NewEvaluator binds the scoring parameters of opts to dist. Only the scoring
// fields of opts are looked at (Vehicles, Weights, BalanceScale). The matrix
// is expected to be resolved (see distance.Matrix.Validate); New performs that
// check for Solvers.
//
// Errors: ErrNilMatrix, ErrTooFewVehicles, ErrBadOptions.
func NewEvaluator(dist *distance.Matrix, opts Options) (*Evaluator, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := validateScoring(opts); err != nil {
		return nil, err
	}
	return &Evaluator{
		dist:     dist,
		n:        dist.Size(),
		vehicles: opts.Vehicles,
		weights:  opts.Weights,
		scale:    opts.BalanceScale,
	}, nil
}

// Breakdown is the decoded cost of a route.
type Breakdown struct {
	Total    int   // sum of all vehicle distances
	Vehicles []int // distance of each vehicle tour, depot to depot
	Average  int   // Total / V (integer division)
	Penalty  int   // scaled mean absolute deviation from Average
	Fitness  int
}

// Fitness returns the score of r; lower is better.
//
// Algorithm:
//  1. A separator at element 0 or 1 scores Invalid.
//  2. Walk the route from index 1: a city following a city adds d[prev][cur];
//     a separator closes the current tour with d[prev][depot] and opens the
//     next one with d[depot][next]. Two adjacent separators score Invalid.
//  3. The final tour is closed with d[last][depot].
//  4. avg = total/V; penalty = (Σ|tour-avg| / V) * BalanceScale.
//  5. fitness = (Distance*total + Balance*penalty) / 100.
//
// A trailing separator or an id outside the matrix also scores Invalid.
// Integer arithmetic only; the result is reproducible bit for bit.
//
// Complexity: O(len(r)).
func (e *Evaluator) Fitness(r Route) int {
	b, ok := e.walk(r)
	if !ok {
		return Invalid
	}
	return b.Fitness
}

// Breakdown returns the decoded cost of a valid route.
//
// Errors: *DefectError (matching ErrStructuralDefect) when r violates any
// Route invariant.
func (e *Evaluator) Breakdown(r Route) (Breakdown, error) {
	if err := ValidateRoute(r, e.n, e.vehicles); err != nil {
		return Breakdown{}, err
	}
	b, ok := e.walk(r)
	if !ok {
		return Breakdown{}, fmt.Errorf("route %v: %w", r, ErrStructuralDefect)
	}
	return b, nil
}

func (e *Evaluator) walk(r Route) (Breakdown, bool) {
	if len(r) < 2 {
		return Breakdown{}, false
	}
	last := len(r) - 1
	if r[0] == Separator || r[1] == Separator || r[last] == Separator {
		return Breakdown{}, false
	}

	var (
		depot   = r[0]
		total   int
		partial int
		tours   = make([]int, 0, e.vehicles)
		cur     int
		prev    int
		d       int
		i       int
	)
	if !e.inRange(depot) {
		return Breakdown{}, false
	}
	for i = 1; i <= last; i++ {
		cur, prev = r[i], r[i-1]
		if cur != Separator {
			if !e.inRange(cur) {
				return Breakdown{}, false
			}
			// After a separator the leg from the depot was already added.
			if prev != Separator {
				d = e.dist.At(prev, cur)
				total += d
				partial += d
			}
			continue
		}
		// cur is a separator and i < last, so r[i+1] exists.
		if r[i+1] == Separator {
			return Breakdown{}, false
		}
		d = e.dist.At(prev, depot)
		total += d
		partial += d
		tours = append(tours, partial)

		if !e.inRange(r[i+1]) {
			return Breakdown{}, false
		}
		d = e.dist.At(depot, r[i+1])
		total += d
		partial = d
	}
	d = e.dist.At(r[last], depot)
	total += d
	partial += d
	tours = append(tours, partial)

	var (
		avg       = total / e.vehicles
		deviation int
		t         int
	)
	for _, t = range tours {
		if t > avg {
			deviation += t - avg
		} else {
			deviation += avg - t
		}
	}
	penalty := (deviation / e.vehicles) * e.scale

	return Breakdown{
		Total:    total,
		Vehicles: tours,
		Average:  avg,
		Penalty:  penalty,
		Fitness:  (e.weights.Distance*total + e.weights.Balance*penalty) / 100,
	}, true
}

func (e *Evaluator) inRange(v int) bool { return v >= 0 && v < e.n }
