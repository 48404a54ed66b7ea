package roadmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// record matches one `kind(arg, arg, arg).` record. Leading blanks are
// consumed so that consecutive matches tile the line.
var record = regexp.MustCompile(`^\s*(city|road)\s*\(([^()]*)\)\s*\.`)

// pendingRoad is a road whose city names are resolved once the whole input
// has been read.
type pendingRoad struct {
	a, b     string
	distance int
	line     int
}

// Load parses the file at path.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %w", err)
	}
	defer f.Close()

	net, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// Parse reads a network from r.
//
// Errors (wrapped with the 1-based line number where it applies):
// ErrMalformedRecord, ErrDuplicateCity, ErrNegativeDistance, ErrUnknownCity,
// ErrNoCities, or the reader's error.
func Parse(r io.Reader) (*Network, error) {
	var (
		net     = &Network{index: make(map[string]int)}
		roads   []pendingRoad
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}

		for strings.TrimSpace(line) != "" {
			m := record.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, strings.TrimSpace(line), ErrMalformedRecord)
			}
			line = line[len(m[0]):]

			args := splitArgs(m[2])
			if len(args) != 3 {
				return nil, fmt.Errorf("line %d: %s wants 3 fields, got %d: %w", lineNo, m[1], len(args), ErrMalformedRecord)
			}
			switch m[1] {
			case "city":
				if err := net.addCity(args); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			case "road":
				road, err := parseRoad(args, lineNo)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				roads = append(roads, road)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("roadmap: read: %w", err)
	}
	if len(net.Cities) == 0 {
		return nil, ErrNoCities
	}

	for _, pr := range roads {
		a, okA := net.index[pr.a]
		b, okB := net.index[pr.b]
		if !okA || !okB {
			missing := pr.a
			if okA {
				missing = pr.b
			}
			return nil, fmt.Errorf("line %d: %q: %w", pr.line, missing, ErrUnknownCity)
		}
		if a == b {
			return nil, fmt.Errorf("line %d: road from %q to itself: %w", pr.line, pr.a, ErrMalformedRecord)
		}
		net.Roads = append(net.Roads, Road{A: a, B: b, Distance: pr.distance})
	}
	return net, nil
}

func (n *Network) addCity(args []string) error {
	name := args[0]
	if name == "" {
		return fmt.Errorf("empty city name: %w", ErrMalformedRecord)
	}
	if _, dup := n.index[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrDuplicateCity)
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("city %q x=%q: %w", name, args[1], ErrMalformedRecord)
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("city %q y=%q: %w", name, args[2], ErrMalformedRecord)
	}
	n.index[name] = len(n.Cities)
	n.Cities = append(n.Cities, City{Name: name, X: x, Y: y})
	return nil
}

func parseRoad(args []string, line int) (pendingRoad, error) {
	d, err := strconv.Atoi(args[2])
	if err != nil {
		return pendingRoad{}, fmt.Errorf("road %s-%s distance=%q: %w", args[0], args[1], args[2], ErrMalformedRecord)
	}
	if d < 0 {
		return pendingRoad{}, fmt.Errorf("road %s-%s distance=%d: %w", args[0], args[1], d, ErrNegativeDistance)
	}
	if args[0] == "" || args[1] == "" {
		return pendingRoad{}, fmt.Errorf("empty city name: %w", ErrMalformedRecord)
	}
	return pendingRoad{a: args[0], b: args[1], distance: d, line: line}, nil
}

func splitArgs(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
