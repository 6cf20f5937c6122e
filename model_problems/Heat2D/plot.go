package Heat2D

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotHistory saves min and max temperature against time, the format follows the file extension
func PlotHistory(steps []Step, file string) (err error) {
	if len(steps) == 0 {
		return fmt.Errorf("no steps to plot")
	}
	var (
		minPts = make(plotter.XYs, len(steps))
		maxPts = make(plotter.XYs, len(steps))
	)
	for i, s := range steps {
		minPts[i].X, minPts[i].Y = s.Time, s.Min
		maxPts[i].X, maxPts[i].Y = s.Time, s.Max
	}
	p := plot.New()
	p.Title.Text = "Temperature history"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Temperature"
	p.Add(plotter.NewGrid())
	if err = plotutil.AddLinePoints(p, "Min", minPts, "Max", maxPts); err != nil {
		return
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("unable to save plot %s: %w", file, err)
	}
	return
}
