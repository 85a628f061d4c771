package experiment

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/agrosolve/cropevo/pkg/errors"
)

// RenderTraces draws one best-fitness-per-generation line per result and
// saves the chart to the given path. The image format follows the path
// extension (.png, .svg, .pdf, ...).
func RenderTraces(results []*Result, title, path string) error {
	if len(results) == 0 {
		return errors.New(errors.InvalidInput, "no results to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best fitness"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, result := range results {
		pts := make(plotter.XYs, len(result.Trace.BestFitness))
		for gen, fitness := range result.Trace.BestFitness {
			pts[gen].X = float64(gen)
			pts[gen].Y = fitness
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrap(err, errors.Unknown, "building trace line")
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(result.Label, line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, errors.Unknown, "saving trace chart")
	}
	return nil
}
