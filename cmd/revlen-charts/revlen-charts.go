package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tylerhslee/peer-review-scores/pkg/analysis"
	"github.com/tylerhslee/peer-review-scores/pkg/charts"
	"github.com/tylerhslee/peer-review-scores/pkg/review"
	"github.com/tylerhslee/peer-review-scores/pkg/tables"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "revlen-charts [DATA_DIR]",
	Short:   "plots bias as a function of review length",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrRevlenCharts = errors.New("plotting review-length charts")

// Output files.
const (
	scatterChartName = "bias_to_revlen.png"
	meanChartName    = "mean_bias_to_revlen.png"
)

func runE(_ *cobra.Command, args []string) error {
	dataDir := "data"
	if len(args) > 0 {
		dataDir = args[0]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrRevlenCharts, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.CsvExt)
	rows, err := tables.ReadCSVFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRevlenCharts, err)
	}

	kept := analysis.FilterLength(rows, analysis.MaxReviewLength)
	logger.Info("first reviews loaded",
		zap.String("path", inPath),
		zap.Int("rows", len(rows)),
		zap.Int("outliers_removed", len(rows)-len(kept)))

	scatterPath := filepath.Join(dataDir, scatterChartName)
	err = plotScatter(scatterPath, kept)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRevlenCharts, err)
	}

	meanPath := filepath.Join(dataDir, meanChartName)
	err = plotMeans(meanPath, kept)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRevlenCharts, err)
	}

	logger.Info("charts written",
		zap.String("scatter", scatterPath),
		zap.String("means", meanPath))
	return nil
}

// plotScatter draws bias and absolute bias against review length, one point
// cloud per track. The legend appears only on the lower panel, matching a
// shared color coding across both.
func plotScatter(path string, rows []review.FirstReview) error {
	biasSeries := trackSeries(rows, func(r review.FirstReview) float64 { return r.Bias })
	absBiasSeries := trackSeries(rows, func(r review.FirstReview) float64 { return math.Abs(r.Bias) })

	biasPlot, err := charts.Scatter("Review Length", "Bias", biasSeries, false)
	if err != nil {
		return err
	}
	absBiasPlot, err := charts.Scatter("Review Length", "Absolute Bias", absBiasSeries, true)
	if err != nil {
		return err
	}

	return charts.SaveColumn(path, 25*vg.Inch, charts.Height, biasPlot, absBiasPlot)
}

func trackSeries(rows []review.FirstReview, value func(review.FirstReview) float64) []charts.Series {
	byTrack := map[string]plotter.XYs{}
	var tracks []string
	for _, r := range rows {
		if _, ok := byTrack[r.Track]; !ok {
			tracks = append(tracks, r.Track)
		}
		byTrack[r.Track] = append(byTrack[r.Track], plotter.XY{
			X: float64(r.ReviewLength),
			Y: value(r),
		})
	}
	sort.Strings(tracks)

	series := make([]charts.Series, len(tracks))
	for i, track := range tracks {
		series[i] = charts.Series{Name: track, Points: byTrack[track]}
	}
	return series
}

// plotMeans draws mean bias and mean absolute bias as line graphs over
// review length.
func plotMeans(path string, rows []review.FirstReview) error {
	points := analysis.MeanBiasByLength(rows)

	biasPoints := make(plotter.XYs, len(points))
	absBiasPoints := make(plotter.XYs, len(points))
	for i, p := range points {
		biasPoints[i] = plotter.XY{X: float64(p.Length), Y: p.Bias}
		absBiasPoints[i] = plotter.XY{X: float64(p.Length), Y: p.AbsBias}
	}

	biasPlot, err := charts.Line("Review Length", "Mean Bias", biasPoints)
	if err != nil {
		return err
	}
	absBiasPlot, err := charts.Line("Review Length", "Mean Absolute Bias", absBiasPoints)
	if err != nil {
		return err
	}

	return charts.SaveColumn(path, 30*vg.Inch, 12*vg.Inch, biasPlot, absBiasPlot)
}
