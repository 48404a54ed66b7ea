package roadmap

import "errors"

var (
	// ErrMalformedRecord indicates text that is neither a comment nor a
	// well-formed city/road record.
	ErrMalformedRecord = errors.New("roadmap: malformed record")

	// ErrUnknownCity indicates a road that names an undeclared city.
	ErrUnknownCity = errors.New("roadmap: unknown city")

	// ErrDuplicateCity indicates a city declared twice.
	ErrDuplicateCity = errors.New("roadmap: duplicate city")

	// ErrNegativeDistance indicates a road with a negative length.
	ErrNegativeDistance = errors.New("roadmap: negative road distance")

	// ErrUnreachable indicates two cities without any connecting road path.
	ErrUnreachable = errors.New("roadmap: city unreachable")

	// ErrNoCities indicates an input without city records.
	ErrNoCities = errors.New("roadmap: no cities")
)
