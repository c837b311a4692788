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
	Use:     "acceptance-charts [DATA_DIR]",
	Short:   "plots bias and review length against paper acceptance",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrAcceptanceCharts = errors.New("plotting acceptance charts")

// Output files.
const (
	biasChartName   = "bias_to_acceptance.png"
	revlenChartName = "revlen_to_acceptance.png"
)

func runE(_ *cobra.Command, args []string) error {
	dataDir := "data"
	if len(args) > 0 {
		dataDir = args[0]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrAcceptanceCharts, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.CsvExt)
	rows, err := tables.ReadCSVFile(inPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}
	logger.Info("first reviews loaded", zap.String("path", inPath), zap.Int("rows", len(rows)))

	categories, err := analysis.ByAcceptance(rows)
	if err != nil {
		return fmt.Errorf("%w: labeling submissions: %w", ErrAcceptanceCharts, err)
	}
	labels, bias, absBias, lengths := analysis.Split(categories)

	biasPlot, err := charts.Distribution("", "Bias", labels, bias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}
	absBiasPlot, err := charts.Distribution("Acceptance", "Absolute Bias", labels, absBias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}

	biasPath := filepath.Join(dataDir, biasChartName)
	err = charts.SaveColumn(biasPath, charts.Width, charts.Height, biasPlot, absBiasPlot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}

	lengthPlot, err := charts.Distribution("Acceptance", "Review Length", labels, lengths)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}

	lengthPath := filepath.Join(dataDir, revlenChartName)
	err = charts.Save(lengthPlot, lengthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcceptanceCharts, err)
	}

	logger.Info("charts written",
		zap.String("bias", biasPath),
		zap.String("review_length", lengthPath))
	return nil
}
