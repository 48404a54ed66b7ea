package roadmap

// City is a named stop with a plot coordinate.
type City struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Road is an undirected direct connection between two cities, by index.
type Road struct {
	A, B     int
	Distance int
}

// Network is a parsed input file. Cities[0] is the depot.
type Network struct {
	Cities []City
	Roads  []Road
	index  map[string]int
}

// Index returns the position of the named city.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.index[name]
	return i, ok
}

// Names returns the city names in index order.
func (n *Network) Names() []string {
	names := make([]string, len(n.Cities))
	for i, c := range n.Cities {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of cities.
func (n *Network) Len() int { return len(n.Cities) }
