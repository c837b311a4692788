package tables

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

// NewRecord builds an Arrow record holding the given first reviews, in input
// order. The caller owns the returned record and must Release it.
func NewRecord(rows []review.FirstReview) arrow.Record {
	builder := array.NewRecordBuilder(memory.NewGoAllocator(), FirstReviews)
	defer builder.Release()

	fields := builder.Fields()
	reviewIdField := fields[0].(*array.Int64Builder)
	submissionIdField := fields[1].(*array.Int64Builder)
	memberIdField := fields[2].(*array.Int64Builder)
	memberNameField := fields[3].(*array.StringBuilder)
	phdYearField := fields[4].(*array.Int64Builder)
	trackField := fields[5].(*array.StringBuilder)
	scoreField := fields[6].(*array.Int64Builder)
	biasField := fields[7].(*array.Float64Builder)
	reviewLengthField := fields[8].(*array.Int64Builder)
	reviewDatetimeField := fields[9].(*array.StringBuilder)

	for _, r := range rows {
		reviewIdField.Append(r.ReviewID)
		submissionIdField.Append(r.SubmissionID)
		memberIdField.Append(r.MemberID)
		memberNameField.Append(r.MemberName)

		if r.PhDYear == nil {
			phdYearField.AppendNull()
		} else {
			phdYearField.Append(int64(*r.PhDYear))
		}

		trackField.Append(r.Track)
		scoreField.Append(int64(r.Score))
		biasField.Append(r.Bias)
		reviewLengthField.Append(int64(r.ReviewLength))
		reviewDatetimeField.Append(r.Time.Format(DatetimeLayout))
	}

	return builder.NewRecord()
}

// WriteCSV writes rows as the first_reviews CSV contract file. Output is
// deterministic: the same rows always produce identical bytes.
func WriteCSV(w io.Writer, rows []review.FirstReview) error {
	record := NewRecord(rows)
	defer record.Release()

	writer := csv.NewWriter(w, FirstReviews,
		csv.WithHeader(true),
		csv.WithNullWriter(""),
	)

	err := writer.Write(record)
	if err != nil {
		return fmt.Errorf("writing csv record: %w", err)
	}

	err = writer.Flush()
	if err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return writer.Error()
}

// ReadCSV reads a first_reviews CSV file back into rows.
func ReadCSV(r io.Reader) ([]review.FirstReview, error) {
	reader := csv.NewReader(r, FirstReviews,
		csv.WithHeader(true),
		csv.WithNullReader(true, ""),
	)
	defer reader.Release()

	var rows []review.FirstReview
	for reader.Next() {
		parsed, err := fromRecord(reader.Record())
		if err != nil {
			return nil, err
		}
		rows = append(rows, parsed...)
	}

	err := reader.Err()
	if err != nil {
		return nil, fmt.Errorf("reading csv records: %w", err)
	}

	return rows, nil
}

// ReadCSVFile opens and reads a first_reviews CSV file.
func ReadCSVFile(path string) ([]review.FirstReview, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer func() {
		err := file.Close()
		if err != nil {
			fmt.Println(err)
		}
	}()

	rows, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return rows, nil
}

func fromRecord(record arrow.Record) ([]review.FirstReview, error) {
	reviewIdColumn, ok := record.Column(0).(*array.Int64)
	if !ok {
		return nil, fmt.Errorf("expected review id column to be of type *array.Int64, got %T", record.Column(0))
	}
	submissionIdColumn := record.Column(1).(*array.Int64)
	memberIdColumn := record.Column(2).(*array.Int64)
	memberNameColumn := record.Column(3).(*array.String)
	phdYearColumn := record.Column(4).(*array.Int64)
	trackColumn := record.Column(5).(*array.String)
	scoreColumn := record.Column(6).(*array.Int64)
	biasColumn := record.Column(7).(*array.Float64)
	reviewLengthColumn := record.Column(8).(*array.Int64)
	reviewDatetimeColumn := record.Column(9).(*array.String)

	rows := make([]review.FirstReview, record.NumRows())
	for i := range rows {
		parsedTime, err := time.Parse(DatetimeLayout, reviewDatetimeColumn.Value(i))
		if err != nil {
			return nil, fmt.Errorf("parsing %s for review %d: %w",
				ReviewDatetimeFieldName, reviewIdColumn.Value(i), err)
		}

		var phdYear *int
		if phdYearColumn.IsValid(i) {
			year := int(phdYearColumn.Value(i))
			phdYear = &year
		}

		rows[i] = review.FirstReview{
			Enriched: review.Enriched{
				Review: review.Review{
					ReviewID:     reviewIdColumn.Value(i),
					SubmissionID: submissionIdColumn.Value(i),
					MemberID:     memberIdColumn.Value(i),
					MemberName:   memberNameColumn.Value(i),
					Time:         parsedTime,
					Score:        int(scoreColumn.Value(i)),
					ReviewLength: int(reviewLengthColumn.Value(i)),
				},
				Track:   trackColumn.Value(i),
				PhDYear: phdYear,
			},
			Bias: biasColumn.Value(i),
		}
	}

	return rows, nil
}

// WriteParquet writes rows as a gzip-compressed Parquet copy of the
// first_reviews table. The underlying writer of w is closed by parquet.
func WriteParquet(w io.Writer, rows []review.FirstReview) error {
	record := NewRecord(rows)
	defer record.Release()

	writer, err := pqarrow.NewFileWriter(
		FirstReviews,
		w,
		parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Gzip),
			parquet.WithCompressionLevel(gzip.BestCompression)),
		pqarrow.DefaultWriterProps(),
	)
	if err != nil {
		return fmt.Errorf("creating parquet writer: %w", err)
	}

	err = writer.Write(record)
	if err != nil {
		return fmt.Errorf("writing parquet record: %w", err)
	}

	return writer.Close()
}
