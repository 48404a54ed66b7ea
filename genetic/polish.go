package genetic

import "github.com/katalvlaran/vrpga/distance"

// Polish runs deterministic first-improvement 2-opt inside every vehicle
// tour of r and returns the improved copy. Each tour is treated as the closed
// cycle depot → stops → depot; cities never move between vehicles and the
// separators keep their positions, so the result is valid whenever r is.
//
// Move: reverse stops[i..k]; Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e) with
// a = stop before i (or the depot), b = stops[i], c = stops[k], e = stop after
// k (or the depot). A move is applied when Δ < 0 and the scan restarts.
//
// Complexity: O(iter·t²) per tour of t stops; no allocation besides the copy.
func Polish(r Route, dist *distance.Matrix) Route {
	out := r.Clone()
	if len(out) < 2 {
		return out
	}
	depot := out[0]
	start := 1
	for i := 1; i <= len(out); i++ {
		if i == len(out) || out[i] == Separator {
			twoOpt(out[start:i], depot, dist)
			start = i + 1
		}
	}
	return out
}

// twoOpt improves one open stop sequence whose both ends connect to depot.
func twoOpt(stops []int, depot int, dist *distance.Matrix) {
	t := len(stops)
	if t < 2 {
		return
	}
	at := func(p int) int {
		if p < 0 || p >= t {
			return depot
		}
		return stops[p]
	}

	var (
		i, k       int
		a, b, c, e int
		delta      int
		improved   = true
	)
	for improved {
		improved = false
		for i = 0; i < t-1 && !improved; i++ {
			for k = i + 1; k < t; k++ {
				a, b, c, e = at(i-1), stops[i], stops[k], at(k+1)
				delta = dist.At(a, c) + dist.At(b, e) - dist.At(a, b) - dist.At(c, e)
				if delta < 0 {
					reverse(stops[i : k+1])
					improved = true
					break
				}
			}
		}
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
