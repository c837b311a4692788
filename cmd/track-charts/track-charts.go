package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tylerhslee/peer-review-scores/pkg/analysis"
	"github.com/tylerhslee/peer-review-scores/pkg/charts"
	"github.com/tylerhslee/peer-review-scores/pkg/tables"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "track-charts [DATA_DIR]",
	Short:   "plots bias and review length against reviewer track",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrTrackCharts = errors.New("plotting track charts")

// Output files.
const (
	biasChartName   = "bias_to_track.png"
	revlenChartName = "revlen_to_track.png"
)

func runE(_ *cobra.Command, args []string) error {
	dataDir := "data"
	if len(args) > 0 {
		dataDir = args[0]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrTrackCharts, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.CsvExt)
	rows, err := tables.ReadCSVFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}
	logger.Info("first reviews loaded", zap.String("path", inPath), zap.Int("rows", len(rows)))

	labels, bias, absBias, lengths := analysis.Split(analysis.ByTrack(rows))

	biasPlot, err := charts.Distribution("", "Bias", labels, bias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}
	absBiasPlot, err := charts.Distribution("Track", "Absolute Bias", labels, absBias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}

	biasPath := filepath.Join(dataDir, biasChartName)
	err = charts.SaveColumn(biasPath, charts.Width, charts.Height, biasPlot, absBiasPlot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}

	lengthPlot, err := charts.Distribution("Track", "Review Length", labels, lengths)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}

	lengthPath := filepath.Join(dataDir, revlenChartName)
	err = charts.Save(lengthPlot, lengthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrackCharts, err)
	}

	logger.Info("charts written",
		zap.String("bias", biasPath),
		zap.String("review_length", lengthPath))
	return nil
}
