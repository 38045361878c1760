package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/PrakyathPNayak/biocat/analysis"
)

// savePlot renders a windowed signal as a line plot.
func savePlot(s *analysis.Signal, title, yLabel, filePath string) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "position"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = float64(s.Positions[i])
		pts[i].Y = s.Values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		ERROR.Fatalf("Cannot create line: %v\n", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filePath); err != nil {
		ERROR.Fatalf("Cannot save plot: %v\n", err)
	}
	INFO.Printf("wrote %s", filePath)
}
