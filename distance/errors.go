package distance

import "errors"

// Sentinel errors. Every message is prefixed with "distance: ".
// Callers match them with errors.Is; context is added with %w wrapping.
var (
	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("distance: nil matrix")

	// ErrBadShape is returned for an empty or non-square input.
	ErrBadShape = errors.New("distance: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	ErrOutOfRange = errors.New("distance: index out of range")

	// ErrNegative indicates a negative distance other than Unknown.
	ErrNegative = errors.New("distance: negative distance")

	// ErrNonZeroDiagonal indicates that d[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero")

	// ErrAsymmetry indicates that d[i][j] != d[j][i].
	ErrAsymmetry = errors.New("distance: matrix is not symmetric")

	// ErrUnresolved indicates that an Unknown entry is still present.
	// The genetic solver requires a fully resolved matrix.
	ErrUnresolved = errors.New("distance: unresolved entry")
)
