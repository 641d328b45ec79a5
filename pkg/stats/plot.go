package stats

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoLabels is returned when there is nothing to plot.
var ErrNoLabels = errors.New("no labels to plot")

// PlotLabelDistribution saves a grouped bar chart comparing the share of each
// label in the train and validation partitions. The image format follows the
// file extension (png, svg, pdf, ...).
func PlotLabelDistribution(train, valid map[string]int, filename string) error {
	labels := Labels(train, valid)
	if len(labels) == 0 {
		return ErrNoLabels
	}

	trainVals := make(plotter.Values, len(labels))
	validVals := make(plotter.Values, len(labels))
	for i, l := range labels {
		trainVals[i] = Fraction(train, l)
		validVals[i] = Fraction(valid, l)
	}

	p := plot.New()
	p.Title.Text = "Label distribution"
	p.Y.Label.Text = "Fraction of partition"

	w := vg.Points(12)
	trainBars, err := plotter.NewBarChart(trainVals, w)
	if err != nil {
		return err
	}
	trainBars.LineStyle.Width = vg.Length(0)
	trainBars.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	trainBars.Offset = -w / 2

	validBars, err := plotter.NewBarChart(validVals, w)
	if err != nil {
		return err
	}
	validBars.LineStyle.Width = vg.Length(0)
	validBars.Color = color.RGBA{R: 255, G: 120, A: 255}
	validBars.Offset = w / 2

	p.Add(trainBars, validBars)
	p.Legend.Add("train", trainBars)
	p.Legend.Add("valid", validBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
