package genetic_test

import (
	"testing"

	"github.com/katalvlaran/vrpga/distance"
	"github.com/katalvlaran/vrpga/genetic"
	"github.com/stretchr/testify/require"
)

const sep = -1

// lineMatrix places n cities on a line: d[i][j] = |i-j|.
func lineMatrix(t *testing.T, n int) *distance.Matrix {
	t.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i > j {
				rows[i][j] = i - j
			} else {
				rows[i][j] = j - i
			}
		}
	}
	m, err := distance.FromRows(rows)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func mustEvaluator(t *testing.T, dist *distance.Matrix, opts genetic.Options) *genetic.Evaluator {
	t.Helper()
	eval, err := genetic.NewEvaluator(dist, opts)
	require.NoError(t, err)
	return eval
}
