package genetic

import (
	"errors"
	"math"
)

// Separator marks the boundary between two vehicle tours in a Route.
const Separator = -1

// Depot is the city index every vehicle starts from and returns to.
const Depot = 0

// Invalid is the fitness of a structurally defective route. It loses every
// comparison against a valid route.
const Invalid = math.MaxInt

// Sentinel errors. Every message is prefixed with "genetic: ".
var (
	// ErrNilMatrix indicates that no distance matrix was supplied.
	ErrNilMatrix = errors.New("genetic: nil distance matrix")

	// ErrTooFewVehicles indicates Options.Vehicles < 2.
	ErrTooFewVehicles = errors.New("genetic: at least two vehicles required")

	// ErrTooFewCities indicates that the instance cannot give every vehicle
	// at least one city besides the depot.
	ErrTooFewCities = errors.New("genetic: not enough cities for the vehicle count")

	// ErrPopulationTooSmall indicates Options.PopulationSize < 2.
	ErrPopulationTooSmall = errors.New("genetic: population size must be at least 2")

	// ErrBadOptions indicates an out-of-range tuning parameter
	// (generations, mutation rate, weights, balance scale).
	ErrBadOptions = errors.New("genetic: invalid options")

	// ErrLengthMismatch indicates crossover parents of different lengths.
	ErrLengthMismatch = errors.New("genetic: parent length mismatch")

	// ErrStructuralDefect is matched by every *DefectError.
	ErrStructuralDefect = errors.New("genetic: structural defect")

	// ErrNotPermutation indicates an input that is not a permutation of 1..K.
	ErrNotPermutation = errors.New("genetic: not a permutation")

	// ErrBadInversions indicates an inversion sequence with an entry that no
	// permutation can produce.
	ErrBadInversions = errors.New("genetic: invalid inversion sequence")
)

// Solution is a route together with its fitness.
type Solution struct {
	Route   Route
	Fitness int
}

// Stats counts the work done by one Solver.
type Stats struct {
	Generations int // completed generation steps (excluding the initial population)
	Evaluations int // fitness evaluations
	Offspring   int // children produced by crossover
	Repaired    int // children whose separators had to be repaired
	Mutations   int // routes that received a swap
	PolishGain  int // fitness removed by the final 2-opt pass
}
