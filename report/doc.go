// Package report decodes a solved route into a per-vehicle plan and renders
// it as text or JSON.
//
// Text layout:
//
//	Total distance of all vehicles: 233
//	Vehicle 1 (138): Koeln -> Bonn -> Aachen -> Koeln
//	Vehicle 2 (95): Koeln -> Wuppertal -> Koeln
//
// A vehicle without stops is printed as "Vehicle k (0)".
package report
