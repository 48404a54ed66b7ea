// Package roadmap loads a road network from the city/road text format and
// turns it into the distance matrix consumed by the genetic solver.
//
// Format:
//
//	% a comment runs to the end of the line
//	city(Aachen, 6.08, 50.77).  city(Bonn, 7.10, 50.73).
//	road(Aachen, Bonn, 91).
//
// A line may hold several records. Cities are indexed in declaration order
// and the first declared city is the depot. Roads are undirected and may be
// declared before the cities they join; parallel roads keep the shortest.
//
// Resolve builds the matrix. With FillMissing every entry becomes the
// shortest road distance (Dijkstra from every city), which also makes
// pairs without a direct road usable; Resolved.Leg expands a matrix entry
// back into the cities actually driven through.
package roadmap
