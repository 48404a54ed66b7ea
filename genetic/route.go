package genetic

import (
	"fmt"
	"strconv"
	"strings"
)

// Route is the encoding of one candidate solution: the depot, then every
// other city once, with Separator markers between vehicle tours.
type Route []int

// DefectKind names the first invariant a Route violates.
type DefectKind int

const (
	// DefectNone is the zero value; ValidateRoute never reports it.
	DefectNone DefectKind = iota
	// DefectLength: len(route) != N+V-1.
	DefectLength
	// DefectDepotSeparator: element 0 is a separator.
	DefectDepotSeparator
	// DefectFirstTourEmpty: element 1 is a separator.
	DefectFirstTourEmpty
	// DefectLastTourEmpty: the last element is a separator.
	DefectLastTourEmpty
	// DefectRepeatedStop: two consecutive equal elements (this also covers
	// two adjacent separators).
	DefectRepeatedStop
	// DefectCityCoverage: a city id is missing, duplicated or out of range.
	DefectCityCoverage
	// DefectSeparatorCount: the number of separators is not V-1.
	DefectSeparatorCount
	// DefectDepotNotFirst: element 0 is a city other than the depot.
	DefectDepotNotFirst
)

var defectNames = [...]string{
	DefectNone:           "none",
	DefectLength:         "length",
	DefectDepotSeparator: "depot is a separator",
	DefectFirstTourEmpty: "first tour is empty",
	DefectLastTourEmpty:  "last tour is empty",
	DefectRepeatedStop:   "same element twice in a row",
	DefectCityCoverage:   "city missing or duplicated",
	DefectSeparatorCount: "separator count",
	DefectDepotNotFirst:  "depot is not first",
}

// String returns a short human-readable name.
func (k DefectKind) String() string {
	if k < 0 || int(k) >= len(defectNames) {
		return "DefectKind(" + strconv.Itoa(int(k)) + ")"
	}
	return defectNames[k]
}

// DefectError reports the first invariant a Route violates and where.
// It matches ErrStructuralDefect via errors.Is.
type DefectError struct {
	Kind  DefectKind
	Index int // position in the route, or the offending city id for DefectCityCoverage
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("genetic: structural defect: %s (at %d)", e.Kind, e.Index)
}

// Is makes errors.Is(err, ErrStructuralDefect) true for every DefectError.
func (e *DefectError) Is(target error) bool { return target == ErrStructuralDefect }

func defect(kind DefectKind, index int) error { return &DefectError{Kind: kind, Index: index} }

// ValidateRoute checks every Route invariant for n cities and the given
// vehicle count. Checks run in this order and the first failure is returned:
//
//  1. length == n + vehicles - 1
//  2. element 0 is not a separator
//  3. element 1 is not a separator
//  4. last element is not a separator
//  5. no two consecutive equal elements
//  6. every city id in [0, n) appears exactly once
//  7. exactly vehicles-1 separators
//  8. element 0 is the depot
//
// It is meant for diagnostics and tests; the fitness hot path performs the
// cheap subset of these checks inline.
//
// Complexity: O(len(route)) time, O(n) space.
func ValidateRoute(r Route, n, vehicles int) error {
	if n < 1 || vehicles < 1 || len(r) != n+vehicles-1 || len(r) < 2 {
		return defect(DefectLength, len(r))
	}
	last := len(r) - 1
	if r[0] == Separator {
		return defect(DefectDepotSeparator, 0)
	}
	if r[1] == Separator {
		return defect(DefectFirstTourEmpty, 1)
	}
	if r[last] == Separator {
		return defect(DefectLastTourEmpty, last)
	}

	var i int
	for i = 1; i < len(r); i++ {
		if r[i-1] == r[i] {
			return defect(DefectRepeatedStop, i)
		}
	}

	var (
		seen       = make([]bool, n)
		separators int
		v          int
	)
	for i, v = range r {
		if v == Separator {
			separators++
			continue
		}
		if v < 0 || v >= n || seen[v] {
			return defect(DefectCityCoverage, v)
		}
		seen[v] = true
	}
	for v = 0; v < n; v++ {
		if !seen[v] {
			return defect(DefectCityCoverage, v)
		}
	}
	if separators != vehicles-1 {
		return defect(DefectSeparatorCount, separators)
	}
	if r[0] != Depot {
		return defect(DefectDepotNotFirst, 0)
	}
	return nil
}

// Clone returns an independent copy.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	return append(Route(nil), r...)
}

// Separators returns the number of Separator markers.
func (r Route) Separators() int {
	var count int
	for _, v := range r {
		if v == Separator {
			count++
		}
	}
	return count
}

// Tours splits the route into per-vehicle stop lists. The depot (element 0)
// is not repeated in the tours; an empty tour yields an empty slice.
func (r Route) Tours() [][]int {
	if len(r) == 0 {
		return nil
	}
	tours := make([][]int, 0, r.Separators()+1)
	cur := []int{}
	for _, v := range r[1:] {
		if v == Separator {
			tours = append(tours, cur)
			cur = []int{}
			continue
		}
		cur = append(cur, v)
	}
	return append(tours, cur)
}

// String renders the route with "|" for separators, e.g. "0 1 2 | 3".
func (r Route) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v == Separator {
			b.WriteByte('|')
			continue
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// hasSeparatorDefect reports a separator at position 0, 1 or last, or two
// adjacent separators. These are the defects random construction can produce.
func hasSeparatorDefect(r Route) bool {
	last := len(r) - 1
	if r[0] == Separator || r[1] == Separator || r[last] == Separator {
		return true
	}
	for i := 2; i < last; i++ {
		if r[i] == Separator && r[i-1] == Separator {
			return true
		}
	}
	return false
}
