package genetic_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/vrpga/genetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateRoute_Defects walks every defect kind in priority order.
func TestValidateRoute_Defects(t *testing.T) {
	cases := []struct {
		name  string
		route genetic.Route
		kind  genetic.DefectKind
	}{
		{"short", genetic.Route{0, 1, 2, 3}, genetic.DefectLength},
		{"long", genetic.Route{0, 1, 2, sep, 3, sep}, genetic.DefectLength},
		{"separator first", genetic.Route{sep, 1, 2, 0, 3}, genetic.DefectDepotSeparator},
		{"empty first tour", genetic.Route{0, sep, 1, 2, 3}, genetic.DefectFirstTourEmpty},
		{"empty last tour", genetic.Route{0, 1, 2, 3, sep}, genetic.DefectLastTourEmpty},
		{"repeated city", genetic.Route{0, 1, 1, sep, 3}, genetic.DefectRepeatedStop},
		{"missing city", genetic.Route{0, 1, 2, sep, 1}, genetic.DefectCityCoverage},
		{"out of range", genetic.Route{0, 1, 2, sep, 7}, genetic.DefectCityCoverage},
		{"depot not first", genetic.Route{1, 0, 2, sep, 3}, genetic.DefectDepotNotFirst},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := genetic.ValidateRoute(tc.route, 4, 2)
			require.Error(t, err)
			assert.ErrorIs(t, err, genetic.ErrStructuralDefect)

			var de *genetic.DefectError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.kind, de.Kind, de.Error())
		})
	}
}

// TestValidateRoute_CoverageBeforeCount checks that a wrong city set is
// reported as coverage even when the separator count is off as well.
func TestValidateRoute_CoverageBeforeCount(t *testing.T) {
	var de *genetic.DefectError

	err := genetic.ValidateRoute(genetic.Route{0, 1, 2, sep, 3, 4, 5}, 5, 3)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, genetic.DefectCityCoverage, de.Kind)
	assert.Equal(t, 5, de.Index)

	err = genetic.ValidateRoute(genetic.Route{0, 1, 2, sep, 3, 4, 2}, 5, 3)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, genetic.DefectCityCoverage, de.Kind)
}

func TestValidateRoute_Valid(t *testing.T) {
	assert.NoError(t, genetic.ValidateRoute(genetic.Route{0, 1, 2, sep, 3}, 4, 2))
	assert.NoError(t, genetic.ValidateRoute(genetic.Route{0, 3, sep, 2, sep, 1}, 4, 3))
}

func TestRoute_Helpers(t *testing.T) {
	r := genetic.Route{0, 1, 2, sep, 3}

	assert.Equal(t, 1, r.Separators())
	assert.Equal(t, [][]int{{1, 2}, {3}}, r.Tours())
	assert.Equal(t, "0 1 2 | 3", r.String())

	c := r.Clone()
	c[1] = 9
	assert.Equal(t, 1, r[1], "Clone must not alias")
	assert.Nil(t, genetic.Route(nil).Clone())
	assert.Nil(t, genetic.Route(nil).Tours())
}

func TestDefectKind_String(t *testing.T) {
	assert.Equal(t, "length", genetic.DefectLength.String())
	assert.Equal(t, "DefectKind(42)", genetic.DefectKind(42).String())
}
