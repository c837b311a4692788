// Package charts renders the analysis figures with gonum/plot. The figures
// keep the wide aspect and stacked two-panel layout of the dataset's
// original charts.
package charts

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	Width  = 20 * vg.Inch
	Height = 10 * vg.Inch
)

// Distribution draws one box per category on a nominal x axis.
func Distribution(xlabel, ylabel string, labels []string, values [][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	for i, categoryValues := range values {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(categoryValues))
		if err != nil {
			return nil, fmt.Errorf("box plot for %q: %w", labels[i], err)
		}
		p.Add(box)
	}
	p.NominalX(labels...)

	return p, nil
}

// Series is one named point cloud of a scatter plot.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Scatter draws one colored point cloud per series, with a legend when
// requested.
func Scatter(xlabel, ylabel string, series []Series, legend bool) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		points, err := plotter.NewScatter(s.Points)
		if err != nil {
			return nil, fmt.Errorf("scatter for %q: %w", s.Name, err)
		}
		points.GlyphStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Radius = vg.Points(2)
		p.Add(points)

		if legend {
			p.Legend.Add(s.Name, points)
		}
	}

	return p, nil
}

// Line draws a single line through points ascending in x.
func Line(xlabel, ylabel string, points plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, fmt.Errorf("line plot: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	return p, nil
}

// Save writes a single plot to a PNG file at the standard figure size.
func Save(p *plot.Plot, path string) error {
	err := p.Save(Width, Height, path)
	if err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}
	return nil
}

// SaveColumn writes plots stacked vertically into a single PNG file.
func SaveColumn(path string, width, height vg.Length, plots ...*plot.Plot) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}

	canvases := plot.Align(grid, draw.Tiles{Rows: len(plots), Cols: 1}, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(file)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return file.Close()
}
