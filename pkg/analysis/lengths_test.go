package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

func lengthReview(reviewID int64, length int, bias float64) review.FirstReview {
	return review.FirstReview{
		Enriched: review.Enriched{
			Review: review.Review{
				ReviewID:     reviewID,
				ReviewLength: length,
			},
		},
		Bias: bias,
	}
}

func TestFilterLength(t *testing.T) {
	rows := []review.FirstReview{
		lengthReview(1, 100, 0),
		lengthReview(2, 6000, 0),
		lengthReview(3, 6001, 0),
	}

	kept := FilterLength(rows, MaxReviewLength)
	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2", len(kept))
	}
	for _, r := range kept {
		if r.ReviewLength > MaxReviewLength {
			t.Errorf("review %d with length %d survived the cutoff", r.ReviewID, r.ReviewLength)
		}
	}
}

func TestMeanBiasByLength(t *testing.T) {
	rows := []review.FirstReview{
		lengthReview(1, 200, 4),
		lengthReview(2, 100, -2),
		lengthReview(3, 200, -2),
		lengthReview(4, 100, 2),
	}

	got := MeanBiasByLength(rows)

	want := []LengthPoint{
		{Length: 100, Bias: 0, AbsBias: 2},
		{Length: 200, Bias: 1, AbsBias: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MeanBiasByLength mismatch (-want +got):\n%s", diff)
	}
}
