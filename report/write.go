package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteText renders p in the plain text layout described in the package doc.
func (p Plan) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Total distance of all vehicles: %d\n", p.Total)
	for _, v := range p.Vehicles {
		if len(v.Path) == 0 {
			fmt.Fprintf(bw, "Vehicle %d (0)\n", v.Number)
			continue
		}
		fmt.Fprintf(bw, "Vehicle %d (%d): %s\n", v.Number, v.Distance, strings.Join(v.Path, " -> "))
	}
	return bw.Flush()
}

// WriteJSON writes p as indented JSON.
func (p Plan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
