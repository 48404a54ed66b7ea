// Package visualize renders solved plans and convergence curves with
// gonum/plot. The output format follows the file extension of the target
// path (.png, .svg, .pdf, ...).
package visualize

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/vrpga/report"
	"github.com/katalvlaran/vrpga/roadmap"
)

var (
	// ErrNoCities indicates an empty city list.
	ErrNoCities = errors.New("visualize: no cities")

	// ErrBadStop indicates a plan stop or leg city outside the city list.
	ErrBadStop = errors.New("visualize: stop index out of range")

	// ErrNoHistory indicates a convergence plot without data points.
	ErrNoHistory = errors.New("visualize: empty history")
)

// Default canvas size.
const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

// LegFunc expands the drive from city a to city b into the cities passed on
// the way, both ends included (see roadmap.Resolved.Leg). Returning nil draws
// a straight segment.
type LegFunc func(a, b int) []int

// Routes draws every city as a labeled point, the depot as a larger triangle,
// and one colored polyline per vehicle. With leg != nil each hop follows the
// road network instead of a straight line.
func Routes(cities []roadmap.City, plan report.Plan, leg LegFunc, path string) error {
	if len(cities) == 0 {
		return ErrNoCities
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Total distance %d", plan.Total)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	var (
		all    = make(plotter.XYs, len(cities))
		labels = make([]string, len(cities))
	)
	for i, c := range cities {
		all[i].X, all[i].Y = c.X, c.Y
		labels[i] = c.Name
	}
	points, err := plotter.NewScatter(all)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	points.GlyphStyle.Radius = vg.Points(2.5)

	depot, err := plotter.NewScatter(all[:1])
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	depot.GlyphStyle.Shape = draw.PyramidGlyph{}
	depot.GlyphStyle.Radius = vg.Points(6)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: all, Labels: labels})
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}

	for k, v := range plan.Vehicles {
		if len(v.Stops) == 0 {
			continue
		}
		xys, err := tourPoints(cities, v.Stops, leg)
		if err != nil {
			return fmt.Errorf("vehicle %d: %w", v.Number, err)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("visualize: %w", err)
		}
		line.LineStyle.Color = plotutil.Color(k)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("vehicle %d (%d)", v.Number, v.Distance), line)
	}
	p.Add(points, depot, names)
	p.Legend.Add("depot", depot)
	p.Legend.Top = true

	if err = p.Save(width, height, path); err != nil {
		return fmt.Errorf("visualize: save %s: %w", path, err)
	}
	return nil
}

// tourPoints returns the polyline depot → stops → depot, expanded by leg.
func tourPoints(cities []roadmap.City, stops []int, leg LegFunc) (plotter.XYs, error) {
	var (
		seq = make([]int, 0, len(stops)+2)
		xys plotter.XYs
	)
	seq = append(seq, 0)
	seq = append(seq, stops...)
	seq = append(seq, 0)

	add := func(c int) error {
		if c < 0 || c >= len(cities) {
			return fmt.Errorf("city %d: %w", c, ErrBadStop)
		}
		xys = append(xys, plotter.XY{X: cities[c].X, Y: cities[c].Y})
		return nil
	}
	if err := add(seq[0]); err != nil {
		return nil, err
	}
	for i := 1; i < len(seq); i++ {
		hop := []int{seq[i-1], seq[i]}
		if leg != nil {
			if via := leg(seq[i-1], seq[i]); len(via) > 0 {
				hop = via
			}
		}
		for _, c := range hop[1:] {
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}
	return xys, nil
}

// Convergence plots the running best fitness per generation, one line per
// history (one per parallel run).
func Convergence(histories [][]int, path string) error {
	p := plot.New()
	p.Title.Text = "Best fitness"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	var drawn int
	for i, h := range histories {
		if len(h) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(h))
		for g, f := range h {
			xys[g].X = float64(g)
			xys[g].Y = float64(f)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("visualize: %w", err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("run %d", i), line)
		drawn++
	}
	if drawn == 0 {
		return ErrNoHistory
	}
	p.Legend.Top = true

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("visualize: save %s: %w", path, err)
	}
	return nil
}
