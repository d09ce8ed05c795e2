package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotTop saves a bar chart of entries. The image format is chosen
// by the file extension (png, svg, pdf, ...).
func PlotTop(entries []Entry, title, fn string) error {
	if len(entries) == 0 {
		return errors.New("nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Frequency"

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.Value
		names[i] = e.Symbol
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(names...)

	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
