// freqplot.go
// Package freqplot renders letter-frequency bar charts, the visual
// companion to the Caesar frequency-analysis attack.
package freqplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePNG writes a bar chart of the 26 letter counts to filename. The
// image format follows the file extension, so .png is the usual choice.
func SavePNG(freq [26]int, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "letter"
	p.Y.Label.Text = "count"

	values := make(plotter.Values, len(freq))
	for i, n := range freq {
		values[i] = float64(n)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("freqplot: building chart: %w", err)
	}
	p.Add(bars)

	labels := make([]string, len(freq))
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("freqplot: saving %q: %w", filename, err)
	}
	return nil
}
