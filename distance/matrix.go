package distance

import (
	"fmt"
	"strings"
)

// Unknown marks a missing direct road.
const Unknown = -1

// Matrix is a dense row-major N×N distance table (offset = i*n + j).
type Matrix struct {
	n    int
	data []int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New returns an n×n matrix with a zero diagonal and every off-diagonal
// entry set to Unknown.
//
// Errors: ErrBadShape if n < 1.
//
// Complexity: O(n²).
func New(n int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrBadShape
	}
	m := &Matrix{n: n, data: make([]int, n*n)}

	var i int
	for i = range m.data {
		m.data[i] = Unknown
	}
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 0
	}
	return m, nil
}

// FromRows copies rows into a new Matrix. The rows must form a non-empty
// square table. Values are copied verbatim; call Validate to check them.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{n: n, data: make([]int, n*n)}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrBadShape)
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}
	return m, nil
}

// Size returns N.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns d[i][j]. It is the solver hot path: no error, and an index
// outside [0, N) panics like a slice access.
func (m *Matrix) At(i, j int) int {
	return m.data[i*m.n+j]
}

// IsKnown reports whether d[i][j] holds a resolved distance.
func (m *Matrix) IsKnown(i, j int) bool {
	return m.data[i*m.n+j] != Unknown
}

// Set writes v into d[i][j] and d[j][i].
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNegative (v < 0 and v != Unknown),
// ErrNonZeroDiagonal (i == j and v != 0).
func (m *Matrix) Set(i, j, v int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v < 0 && v != Unknown {
		return fmt.Errorf("Set(%d,%d)=%d: %w", i, j, v, ErrNegative)
	}
	if i == j && v != 0 {
		return fmt.Errorf("Set(%d,%d)=%d: %w", i, j, v, ErrNonZeroDiagonal)
	}
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
	return nil
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{n: m.n, data: make([]int, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Rows returns a copy of the matrix as a jagged table.
func (m *Matrix) Rows() [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}
	return out
}

// Unresolved returns the number of Unknown entries in the upper triangle.
func (m *Matrix) Unresolved() int {
	if m == nil {
		return 0
	}
	var (
		i, j  int
		count int
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] == Unknown {
				count++
			}
		}
	}
	return count
}

// String renders the matrix one row per line; Unknown prints as "?".
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if v := m.data[i*m.n+j]; v == Unknown {
				b.WriteString("?")
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}
