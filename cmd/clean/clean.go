package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb"
	"github.com/willbeason/bondsmith"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
	"github.com/tylerhslee/peer-review-scores/pkg/tables"
	"github.com/tylerhslee/peer-review-scores/pkg/workbook"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cmd = cobra.Command{
	Use:     "clean [DATA_DIR]",
	Short:   "cleans the review-scores workbook into the first-reviews table",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    runE,
}

var ErrClean = errors.New("cleaning review scores")

const (
	workbookName = "review_scores.xlsx"
	reportName   = "clean_report.json"

	defaultDataDir = "data"
)

// Report summarizes one clean run: what was read and what was dropped.
type Report struct {
	RunId                   string  `json:"run_id"`
	InputReviews            int     `json:"input_reviews"`
	UnmatchedReviews        []int64 `json:"unmatched_reviews"`
	SingleReviewSubmissions []int64 `json:"single_review_submissions"`
	OutputReviews           int     `json:"output_reviews"`
}

func runE(_ *cobra.Command, args []string) error {
	dataDir := defaultDataDir
	if len(args) > 0 {
		dataDir = args[0]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("%w: creating logger: %w", ErrClean, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath := filepath.Join(dataDir, workbookName)
	inFile, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %w", ErrClean, inPath, err)
	}
	defer func() {
		err := inFile.Close()
		if err != nil {
			fmt.Println(err)
		}
	}()

	countReader := bondsmith.NewCountReader(inFile)
	wb, err := workbook.Open(countReader, logger)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %w", ErrClean, inPath, err)
	}
	defer func() {
		err := wb.Close()
		if err != nil {
			fmt.Println(err)
		}
	}()
	logger.Info("workbook parsed",
		zap.String("path", inPath),
		zap.Int("bytes", int(countReader.Count())))

	fields, err := wb.Fields()
	if err != nil {
		return fmt.Errorf("%w: reading fields: %w", ErrClean, err)
	}
	logger.Info("criteria defined",
		zap.Int("fields", len(fields)),
		zap.String("overall", fields[review.FieldOverall]))

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}
	p := mpb.New(mpb.WithWidth(width))

	reviews, err := wb.Reviews(p)
	if err != nil {
		return fmt.Errorf("%w: reading reviews: %w", ErrClean, err)
	}

	members, err := wb.Members()
	if err != nil {
		return fmt.Errorf("%w: reading members: %w", ErrClean, err)
	}
	p.Wait()

	roster, err := review.BuildRoster(members)
	if err != nil {
		return fmt.Errorf("%w: building roster: %w", ErrClean, err)
	}

	enriched, unmatched := review.Join(reviews, roster)
	if len(unmatched) > 0 {
		logger.Warn("dropping reviews without a matching reviewer",
			zap.Int("count", len(unmatched)),
			zap.Int64s("review_ids", unmatched))
	}

	firsts := review.SelectFirst(enriched)
	logger.Info("first reviews selected",
		zap.Int("reviews", len(reviews)),
		zap.Int("first_reviews", len(firsts)))

	biased, singles := review.CalculateBias(firsts)
	if len(singles) > 0 {
		logger.Warn("excluding submissions with a single review",
			zap.Int("count", len(singles)),
			zap.Int64s("submission_ids", singles))
	}

	outPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.CsvExt)
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrClean, outPath, err)
	}
	err = tables.WriteCSV(outFile, biased)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrClean, outPath, err)
	}
	err = outFile.Close()
	if err != nil {
		return fmt.Errorf("%w: closing %q: %w", ErrClean, outPath, err)
	}

	parquetPath := filepath.Join(dataDir, tables.FirstReviewsName+tables.ParquetExt)
	parquetFile, err := os.Create(parquetPath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrClean, parquetPath, err)
	}
	// Don't close parquetFile; parquet handles closing it.
	err = tables.WriteParquet(parquetFile, biased)
	if err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrClean, parquetPath, err)
	}

	report := Report{
		RunId:                   uuid.NewString(),
		InputReviews:            len(reviews),
		UnmatchedReviews:        unmatched,
		SingleReviewSubmissions: singles,
		OutputReviews:           len(biased),
	}
	err = writeReport(filepath.Join(dataDir, reportName), report)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClean, err)
	}

	logger.Info("clean finished",
		zap.String("run_id", report.RunId),
		zap.String("output", outPath),
		zap.Int("rows", len(biased)))
	return nil
}

func writeReport(path string, report Report) error {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	err = os.WriteFile(path, encoded, 0o644)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
