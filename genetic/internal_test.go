package genetic

import (
	"testing"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineDist(t *testing.T, n int) *distance.Matrix {
	t.Helper()
	m, err := distance.New(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.Set(i, j, j-i))
		}
	}
	return m
}

// TestRandomRoute_FiveCustomersFiveVehicles draws 10 000 routes for five
// customers plus the depot and five vehicles, the tightest legal shape: every
// vehicle gets exactly one city.
func TestRandomRoute_FiveCustomersFiveVehicles(t *testing.T) {
	const n, vehicles = 6, 5
	rng := NewRand(7)
	for i := 0; i < 10000; i++ {
		r := randomRoute(n, vehicles, rng)
		require.False(t, hasSeparatorDefect(r), "draw %d: %v", i, r)
		require.NoError(t, ValidateRoute(r, n, vehicles), "draw %d: %v", i, r)
	}
}

func TestRandomRoute_DepotFirst(t *testing.T) {
	rng := NewRand(11)
	for i := 0; i < 1000; i++ {
		r := randomRoute(8, 5, rng)
		require.Equal(t, Depot, r[0])
		require.Len(t, r, 12)
	}
}

func TestInitPopulation(t *testing.T) {
	pop := initPopulation(50, 7, 3, NewRand(1))
	require.Len(t, pop, 50)
	for _, r := range pop {
		assert.NoError(t, ValidateRoute(r, 7, 3))
	}
}

func TestRepairSeparators(t *testing.T) {
	cases := []struct {
		name     string
		in, want Route
		changed  bool
	}{
		{"valid", Route{0, 1, 2, Separator, 3}, Route{0, 1, 2, Separator, 3}, false},
		{"first tour empty", Route{0, Separator, 1, 2, 3}, Route{0, 1, Separator, 2, 3}, true},
		{"trailing", Route{0, 1, 2, 3, Separator}, Route{0, 1, Separator, 2, 3}, true},
		{"adjacent", Route{0, 1, Separator, Separator, 2, 3}, Route{0, 1, Separator, 2, Separator, 3}, true},
		// Three cities cannot fill three tours: the route comes back shorter.
		{"last slot", Route{0, 1, 2, Separator, Separator}, Route{0, 1, Separator, 2}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := repairSeparators(tc.in.Clone())
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

// TestCrossover_ChildrenValid mates many random parents and validates every
// child.
func TestCrossover_ChildrenValid(t *testing.T) {
	for _, shape := range []struct{ n, vehicles int }{{4, 2}, {6, 5}, {10, 3}, {25, 6}} {
		rng := NewRand(int64(shape.n*100 + shape.vehicles))
		for i := 0; i < 500; i++ {
			father := randomRoute(shape.n, shape.vehicles, rng)
			mother := randomRoute(shape.n, shape.vehicles, rng)
			child, err := Crossover(father, mother, shape.n, rng)
			require.NoError(t, err)
			require.Len(t, child, len(father))
			require.NoError(t, ValidateRoute(child, shape.n, shape.vehicles), "%v x %v = %v", father, mother, child)
		}
	}
}

func TestCrossover_IdenticalParents(t *testing.T) {
	r := Route{0, 3, 1, Separator, 2, 4}
	child, err := Crossover(r, r.Clone(), 5, NewRand(3))
	require.NoError(t, err)
	assert.Equal(t, r, child)
}

func TestCrossover_Errors(t *testing.T) {
	rng := NewRand(1)
	_, err := Crossover(Route{0, 1, Separator, 2}, Route{0, 1, 2}, 3, rng)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Crossover(Route{1, 0, Separator, 2}, Route{0, 1, Separator, 2}, 3, rng)
	assert.ErrorIs(t, err, ErrStructuralDefect)

	_, err = Crossover(Route{0, 1, Separator, 1}, Route{0, 1, Separator, 2}, 3, rng)
	assert.ErrorIs(t, err, ErrStructuralDefect)
}

func TestCrossoverPoint_Range(t *testing.T) {
	rng := NewRand(5)
	for _, size := range []int{2, 3, 5, 10, 37} {
		lo, hi := size*2/10, size*8/10
		for i := 0; i < 200; i++ {
			p := crossoverPoint(size, rng)
			require.GreaterOrEqual(t, p, 1)
			require.LessOrEqual(t, p, size-1)
			if lo >= 1 {
				require.GreaterOrEqual(t, p, lo)
			}
			if hi <= size-1 {
				require.LessOrEqual(t, p, hi)
			}
		}
	}
}

// TestMutation_KeepsRoutesValid mutates the same population repeatedly.
func TestMutation_KeepsRoutesValid(t *testing.T) {
	const n, vehicles = 9, 4
	rng := NewRand(99)
	pop := initPopulation(40, n, vehicles, rng)
	for round := 0; round < 200; round++ {
		mutatePopulation(pop, 1, rng)
		for _, r := range pop {
			require.NoError(t, ValidateRoute(r, n, vehicles))
			require.Equal(t, Depot, r[0])
		}
	}
}

func TestMutation_Rate(t *testing.T) {
	rng := NewRand(1)
	pop := initPopulation(20, 6, 2, rng)
	before := make([]Route, len(pop))
	for i, r := range pop {
		before[i] = r.Clone()
	}

	assert.Zero(t, mutatePopulation(pop, 0, rng))
	assert.Equal(t, before, pop)
	assert.Equal(t, len(pop), mutatePopulation(pop, 1, rng))
}

func TestRankByFitness(t *testing.T) {
	order := rankByFitness([]int{40, 10, Invalid, 20, 10})
	require.Len(t, order, 5)
	assert.ElementsMatch(t, []int{1, 4}, order[:2])
	assert.Equal(t, 3, order[2])
	assert.Equal(t, 0, order[3])
	assert.Equal(t, 2, order[4])
}

func TestNextGeneration_ElitesSurvive(t *testing.T) {
	s, err := New(lineDist(t, 8), Options{
		Vehicles:       3,
		PopulationSize: 6,
		Weights:        Weights{Distance: 30, Balance: 70},
		BalanceScale:   10,
		Seed:           4,
	})
	require.NoError(t, err)

	pop := initPopulation(6, 8, 3, s.rng)
	fitness := []int{50, 10, 30, 20, 60, 40}
	next := s.nextGeneration(pop, fitness)
	require.Len(t, next, 6)

	// Ownership is moved, not copied.
	assert.Same(t, &pop[1][0], &next[0][0])
	assert.Same(t, &pop[3][0], &next[1][0])
	assert.Same(t, &pop[2][0], &next[2][0])
	for _, r := range next[3:] {
		assert.NoError(t, ValidateRoute(r, 8, 3))
	}
	assert.Equal(t, 3, s.stats.Offspring)
}

func TestPickParents(t *testing.T) {
	s := &Solver{rng: NewRand(2)}
	a, b := s.pickParents(1)
	assert.Equal(t, 0, a)
	assert.Equal(t, 0, b)
	for i := 0; i < 100; i++ {
		a, b = s.pickParents(3)
		require.NotEqual(t, a, b)
		require.Less(t, a, 3)
		require.Less(t, b, 3)
	}
}

func TestDeriveSeed(t *testing.T) {
	seen := map[int64]bool{}
	for i := uint64(0); i < 1000; i++ {
		s := DeriveSeed(42, i)
		require.NotZero(t, s)
		require.False(t, seen[s], "collision at stream %d", i)
		seen[s] = true
	}
	assert.Equal(t, DeriveSeed(42, 3), DeriveSeed(42, 3))
	assert.NotEqual(t, DeriveSeed(42, 3), DeriveSeed(43, 3))
}

func TestNewRand_ZeroSeed(t *testing.T) {
	a, b := NewRand(0), NewRand(defaultRNGSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}
