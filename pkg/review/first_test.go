package review

import (
	"testing"
	"time"
)

func reviewAt(reviewID, memberID, submissionID int64, ts string) Enriched {
	parsed, err := time.Parse("2006-01-02T15:04", ts)
	if err != nil {
		panic(err)
	}
	return Enriched{
		Review: Review{
			ReviewID:     reviewID,
			SubmissionID: submissionID,
			MemberID:     memberID,
			Time:         parsed,
		},
	}
}

func TestSelectFirstKeepsEarliest(t *testing.T) {
	reviews := []Enriched{
		reviewAt(2, 10, 100, "2020-01-05T09:00"),
		reviewAt(1, 10, 100, "2020-01-01T10:00"),
	}

	first := SelectFirst(reviews)
	if len(first) != 1 {
		t.Fatalf("got %d reviews, want 1", len(first))
	}
	if first[0].ReviewID != 1 {
		t.Errorf("kept review %d, want 1 (the earlier review)", first[0].ReviewID)
	}
}

// Reviews sharing a timestamp keep workbook order, so the row that appeared
// first wins.
func TestSelectFirstStableTies(t *testing.T) {
	reviews := []Enriched{
		reviewAt(7, 10, 100, "2020-01-01T10:00"),
		reviewAt(3, 10, 100, "2020-01-01T10:00"),
	}

	first := SelectFirst(reviews)
	if len(first) != 1 {
		t.Fatalf("got %d reviews, want 1", len(first))
	}
	if first[0].ReviewID != 7 {
		t.Errorf("kept review %d, want 7 (first in workbook order)", first[0].ReviewID)
	}
}

func TestSelectFirstOrdersByMemberThenSubmission(t *testing.T) {
	reviews := []Enriched{
		reviewAt(1, 20, 200, "2020-01-01T10:00"),
		reviewAt(2, 10, 200, "2020-01-02T10:00"),
		reviewAt(3, 10, 100, "2020-01-03T10:00"),
	}

	first := SelectFirst(reviews)
	if len(first) != 3 {
		t.Fatalf("got %d reviews, want 3", len(first))
	}

	wantOrder := []int64{3, 2, 1}
	for i, id := range wantOrder {
		if first[i].ReviewID != id {
			t.Errorf("first[%d].ReviewID = %d, want %d", i, first[i].ReviewID, id)
		}
	}
}

func TestSelectFirstDoesNotMutateInput(t *testing.T) {
	reviews := []Enriched{
		reviewAt(2, 10, 100, "2020-01-05T09:00"),
		reviewAt(1, 10, 100, "2020-01-01T10:00"),
	}

	_ = SelectFirst(reviews)
	if reviews[0].ReviewID != 2 {
		t.Error("SelectFirst reordered its input slice")
	}
}
