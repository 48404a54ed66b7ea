package distance

import "fmt"

// Validate checks that m is a fully resolved distance matrix: zero
// diagonal, no negative entries, symmetric, no Unknown entries.
//
// Error priority: nil → diagonal → negative → asymmetry → unresolved.
// The first offending coordinate is reported in the wrapped message.
//
// Complexity: O(N²).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.n < 1 || len(m.data) != m.n*m.n {
		return ErrBadShape
	}

	var (
		i, j     int
		aij, aji int
	)
	for i = 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return fmt.Errorf("d[%d][%d]=%d: %w", i, i, m.data[i*m.n+i], ErrNonZeroDiagonal)
		}
	}
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			aij = m.data[i*m.n+j]
			if aij < 0 && aij != Unknown {
				return fmt.Errorf("d[%d][%d]=%d: %w", i, j, aij, ErrNegative)
			}
		}
	}
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			aij, aji = m.data[i*m.n+j], m.data[j*m.n+i]
			if aij != aji {
				return fmt.Errorf("d[%d][%d]=%d, d[%d][%d]=%d: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] == Unknown {
				return fmt.Errorf("d[%d][%d]: %w", i, j, ErrUnresolved)
			}
		}
	}
	return nil
}
