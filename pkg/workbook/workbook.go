// Package workbook reads the review-scores workbook: the All Reviews,
// Fields, and Members sheets.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

const (
	SheetAllReviews = "All Reviews"
	SheetFields     = "Fields"
	SheetMembers    = "Members"
)

const datetimeLayout = "2006-01-02T15:04"

var (
	ErrMissingSheet  = errors.New("missing sheet")
	ErrUnknownColumn = errors.New("unknown column")
	ErrBadRow        = errors.New("bad row")
)

// Workbook is a parsed review-scores workbook.
type Workbook struct {
	file   *excelize.File
	logger *zap.Logger
}

// Open parses a workbook from r.
func Open(r io.Reader, logger *zap.Logger) (*Workbook, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return &Workbook{file: file, logger: logger}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// Reviews reads the All Reviews sheet. The scores blob of each row is parsed
// and only the overall criterion is kept; review length is the rune count of
// the review body; the date and time columns are combined into one
// timestamp. Member names are lower-cased against improper capitalization.
// When p is non-nil a progress bar tracks row parsing.
func (w *Workbook) Reviews(p *mpb.Progress) ([]review.Review, error) {
	w.logger.Info("reading reviews", zap.String("sheet", SheetAllReviews))

	rows, header, err := w.sheetRows(SheetAllReviews)
	if err != nil {
		return nil, err
	}

	idIdx, err := header.index("#")
	if err != nil {
		return nil, err
	}
	submissionIdx, err := header.index("submission #")
	if err != nil {
		return nil, err
	}
	memberIdx, err := header.index("member #")
	if err != nil {
		return nil, err
	}
	nameIdx, err := header.index("member name")
	if err != nil {
		return nil, err
	}
	dateIdx, err := header.index("date")
	if err != nil {
		return nil, err
	}
	timeIdx, err := header.index("time")
	if err != nil {
		return nil, err
	}
	scoresIdx, err := header.index("scores")
	if err != nil {
		return nil, err
	}
	textIdx, err := header.index("text")
	if err != nil {
		return nil, err
	}

	var bar *mpb.Bar
	if p != nil {
		bar = p.AddBar(int64(len(rows)),
			mpb.PrependDecorators(decor.Name(SheetAllReviews)),
			mpb.PrependDecorators(decor.CountersNoUnit("%d/%d", decor.WCSyncSpace)),
			mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
			mpb.BarRemoveOnComplete())
	}
	start := time.Now()

	reviews := make([]review.Review, 0, len(rows))
	for _, row := range rows {
		if bar != nil {
			bar.IncrBy(1, time.Since(start))
		}

		reviewId, err := parseId(cell(row, idIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: review id %q: %w", ErrBadRow, cell(row, idIdx), err)
		}
		submissionId, err := parseId(cell(row, submissionIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: review %d submission id: %w", ErrBadRow, reviewId, err)
		}
		memberId, err := parseId(cell(row, memberIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: review %d member id: %w", ErrBadRow, reviewId, err)
		}

		reviewTime, err := time.Parse(datetimeLayout, cell(row, dateIdx)+"T"+cell(row, timeIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: review %d datetime: %w", ErrBadRow, reviewId, err)
		}

		scores, err := review.ParseScores(cell(row, scoresIdx))
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", reviewId, err)
		}

		reviews = append(reviews, review.Review{
			ReviewID:     reviewId,
			SubmissionID: submissionId,
			MemberID:     memberId,
			MemberName:   strings.ToLower(cell(row, nameIdx)),
			Time:         reviewTime,
			Score:        scores.Overall,
			ReviewLength: utf8.RuneCountInString(raw(row, textIdx)),
		})
	}

	return reviews, nil
}

// Members reads the Members sheet into reviewer rows keyed on normalized
// names. Empty PhD year cells become nil.
func (w *Workbook) Members() ([]review.Reviewer, error) {
	w.logger.Info("reading members", zap.String("sheet", SheetMembers))

	rows, header, err := w.sheetRows(SheetMembers)
	if err != nil {
		return nil, err
	}

	firstIdx, err := header.index("First name")
	if err != nil {
		return nil, err
	}
	lastIdx, err := header.index("Last name")
	if err != nil {
		return nil, err
	}
	trackIdx, err := header.index("Track")
	if err != nil {
		return nil, err
	}
	yearIdx, err := header.index("Year of PhD")
	if err != nil {
		return nil, err
	}

	reviewers := make([]review.Reviewer, 0, len(rows))
	for _, row := range rows {
		var phdYear *int
		if yearCell := cell(row, yearIdx); yearCell != "" {
			// The sheet sometimes stores years as floats.
			year, err := strconv.ParseFloat(yearCell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: PhD year %q: %w", ErrBadRow, yearCell, err)
			}
			y := int(year)
			phdYear = &y
		}

		reviewers = append(reviewers, review.Reviewer{
			Name:    review.NormalizeName(cell(row, firstIdx), cell(row, lastIdx)),
			Track:   cell(row, trackIdx),
			PhDYear: phdYear,
		})
	}

	return reviewers, nil
}

// Fields reads the Fields sheet and returns the field id to title mapping,
// keeping the first definition of each id. All four criterion ids must be
// defined.
func (w *Workbook) Fields() (map[int]string, error) {
	w.logger.Info("reading fields", zap.String("sheet", SheetFields))

	rows, header, err := w.sheetRows(SheetFields)
	if err != nil {
		return nil, err
	}

	idIdx, err := header.index("field #")
	if err != nil {
		return nil, err
	}
	titleIdx, err := header.index("field title")
	if err != nil {
		return nil, err
	}

	fields := make(map[int]string)
	for _, row := range rows {
		fieldId, err := parseId(cell(row, idIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: field id %q: %w", ErrBadRow, cell(row, idIdx), err)
		}
		if _, ok := fields[int(fieldId)]; ok {
			continue
		}
		fields[int(fieldId)] = cell(row, titleIdx)
	}

	for _, id := range []int{review.FieldAudience, review.FieldOverall, review.FieldConfidence, review.FieldAlternative} {
		if _, ok := fields[id]; !ok {
			return nil, fmt.Errorf("%w: criterion field %d is not defined", ErrBadRow, id)
		}
	}

	return fields, nil
}

type columns struct {
	sheet  string
	lookup map[string]int
}

func (c columns) index(name string) (int, error) {
	idx, ok := c.lookup[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q in sheet %q", ErrUnknownColumn, name, c.sheet)
	}
	return idx, nil
}

func (w *Workbook) sheetRows(sheet string) ([][]string, columns, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, columns{}, fmt.Errorf("%w: %q: %w", ErrMissingSheet, sheet, err)
	}
	if len(rows) == 0 {
		return nil, columns{}, fmt.Errorf("%w: %q has no header row", ErrMissingSheet, sheet)
	}

	lookup := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		lookup[strings.TrimSpace(name)] = i
	}

	return rows[1:], columns{sheet: sheet, lookup: lookup}, nil
}

// GetRows drops trailing empty cells, so short rows read as empty strings.
func raw(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cell(row []string, idx int) string {
	return strings.TrimSpace(raw(row, idx))
}

func parseId(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
