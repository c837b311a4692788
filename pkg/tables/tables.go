// Package tables declares the first_reviews table and its CSV and Parquet
// serializations. The column names here are the contract between the
// cleaning stage and every analysis command.
package tables

import "github.com/apache/arrow/go/v18/arrow"

const (
	FirstReviewsName = "first_reviews"

	CsvExt     = ".csv"
	ParquetExt = ".parquet"
)

// Column names of the first_reviews table.
const (
	ReviewIdFieldName       = "review_id"
	SubmissionIdFieldName   = "submission_id"
	MemberIdFieldName       = "member_id"
	MemberNameFieldName     = "member_name"
	PhdYearFieldName        = "phd_year"
	TrackFieldName          = "track"
	ScoreFieldName          = "score"
	BiasFieldName           = "bias"
	ReviewLengthFieldName   = "review_length"
	ReviewDatetimeFieldName = "review_datetime"
)

// DatetimeLayout is how review_datetime is serialized.
const DatetimeLayout = "2006-01-02T15:04"

var FirstReviews = arrow.NewSchema([]arrow.Field{
	{Name: ReviewIdFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "A unique identifier for the review",
		).Build(),
	},
	{Name: SubmissionIdFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "The paper the review is about; many reviews share one submission",
		).Build(),
	},
	{Name: MemberIdFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "A unique identifier for the reviewer",
		).Build(),
	},
	{Name: MemberNameFieldName,
		Type: arrow.BinaryTypes.String,
		Metadata: NewMetadataBuilder().Add(
			comment, "The lower-cased full name of the reviewer",
		).Build(),
	},
	{Name: PhdYearFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "The year the reviewer received their PhD",
		).Build(),
		Nullable: true,
	},
	{Name: TrackFieldName,
		Type: arrow.BinaryTypes.String,
		Metadata: NewMetadataBuilder().Add(
			comment, "The academic track the reviewer belongs to",
		).Build(),
	},
	{Name: ScoreFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "The overall criterion score of the review",
		).Build(),
	},
	{Name: BiasFieldName,
		Type: arrow.PrimitiveTypes.Float64,
		Metadata: NewMetadataBuilder().Add(
			comment, "The deviation of the score from the mean of the other reviews on the submission",
		).Build(),
	},
	{Name: ReviewLengthFieldName,
		Type: arrow.PrimitiveTypes.Int64,
		Metadata: NewMetadataBuilder().Add(
			comment, "The character count of the review body",
		).Build(),
	},
	{Name: ReviewDatetimeFieldName,
		Type: arrow.BinaryTypes.String,
		Metadata: NewMetadataBuilder().Add(
			comment, "The submission time of the review, formatted "+DatetimeLayout,
		).Build(),
	},
}, NewMetadataBuilder().Add(
	comment, "The first review per reviewer and submission, with bias attached",
).BuildReference())
