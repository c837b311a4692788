package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

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
	Use:     "phd-charts [DATA_DIR]",
	Short:   "plots bias and review length against reviewer PhD year",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrPhdCharts = errors.New("plotting PhD charts")

// Output files.
const (
	biasChartName   = "bias_to_phd.png"
	revlenChartName = "revlen_to_phd.png"
)

func runE(_ *cobra.Command, args []string) error {
	dataDir := "data"
	if len(args) > 0 {
		dataDir = args[0]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrPhdCharts, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.CsvExt)
	rows, err := tables.ReadCSVFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}

	categories := analysis.ByPhDYear(rows)
	labels, bias, absBias, lengths := analysis.Split(categories)
	logger.Info("first reviews loaded",
		zap.String("path", inPath),
		zap.Int("rows", len(rows)),
		zap.Int("phd_year_groups", len(categories)))

	biasPlot, err := charts.Distribution("", "Bias", labels, bias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}
	absBiasPlot, err := charts.Distribution("PhD Year", "Absolute Bias", labels, absBias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}

	biasPath := filepath.Join(dataDir, biasChartName)
	// The PhD figure spreads many year buckets along x, so it gets extra width.
	err = charts.SaveColumn(biasPath, 40*vg.Inch, charts.Height, biasPlot, absBiasPlot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}

	lengthPlot, err := charts.Distribution("PhD Year", "Review Length", labels, lengths)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}

	lengthPath := filepath.Join(dataDir, revlenChartName)
	err = charts.Save(lengthPlot, lengthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPhdCharts, err)
	}

	logger.Info("charts written",
		zap.String("bias", biasPath),
		zap.String("review_length", lengthPath))
	return nil
}
