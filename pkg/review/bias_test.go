package review

import (
	"math"
	"testing"
)

func enrichedScore(reviewID, submissionID int64, score int) Enriched {
	return Enriched{
		Review: Review{
			ReviewID:     reviewID,
			SubmissionID: submissionID,
			MemberID:     reviewID,
			Score:        score,
		},
	}
}

// Scores [3, 5, 7] have mean 5; the bias of each review is its deviation
// from the mean of the other two.
func TestCalculateBias(t *testing.T) {
	reviews := []Enriched{
		enrichedScore(1, 100, 3),
		enrichedScore(2, 100, 5),
		enrichedScore(3, 100, 7),
	}

	biased, singles := CalculateBias(reviews)
	if len(singles) != 0 {
		t.Fatalf("unexpected single-review submissions: %v", singles)
	}
	if len(biased) != 3 {
		t.Fatalf("got %d biased reviews, want 3", len(biased))
	}

	want := []float64{-3, 0, 3}
	for i, r := range biased {
		if math.Abs(r.Bias-want[i]) > 1e-12 {
			t.Errorf("review %d bias = %v, want %v", r.ReviewID, r.Bias, want[i])
		}
	}
}

func TestCalculateBiasTwoReviews(t *testing.T) {
	reviews := []Enriched{
		enrichedScore(1, 100, 4),
		enrichedScore(2, 100, -2),
	}

	biased, _ := CalculateBias(reviews)
	if len(biased) != 2 {
		t.Fatalf("got %d biased reviews, want 2", len(biased))
	}

	// With two reviews the "other mean" is just the other review's score.
	if biased[0].Bias != 6 {
		t.Errorf("bias of first review = %v, want 6", biased[0].Bias)
	}
	if biased[1].Bias != -6 {
		t.Errorf("bias of second review = %v, want -6", biased[1].Bias)
	}
}

func TestCalculateBiasExcludesSingles(t *testing.T) {
	reviews := []Enriched{
		enrichedScore(1, 300, 2),
		enrichedScore(2, 100, 4),
		enrichedScore(3, 100, 6),
		enrichedScore(4, 200, 5),
	}

	biased, singles := CalculateBias(reviews)
	if len(biased) != 2 {
		t.Fatalf("got %d biased reviews, want 2", len(biased))
	}
	for _, r := range biased {
		if r.SubmissionID != 100 {
			t.Errorf("review %d from submission %d survived, want only submission 100",
				r.ReviewID, r.SubmissionID)
		}
	}

	wantSingles := []int64{200, 300}
	if len(singles) != len(wantSingles) {
		t.Fatalf("singles = %v, want %v", singles, wantSingles)
	}
	for i, id := range wantSingles {
		if singles[i] != id {
			t.Errorf("singles[%d] = %d, want %d", i, singles[i], id)
		}
	}
}
