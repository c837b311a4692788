package workbook

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	file := excelize.NewFile()
	defer func() {
		err := file.Close()
		if err != nil {
			t.Error(err)
		}
	}()

	sheets := map[string][][]interface{}{
		SheetAllReviews: {
			{"#", "submission #", "member #", "member name", "date", "time", "scores", "text"},
			{1, 100, 10, "Ada Lovelace", "2020-01-01", "10:00", "Audience: 3 Overall: 4 Confidence: 4 Alternative: 2", "Solid paper."},
			{2, 100, 11, "grace hopper", "2020-01-02", "09:30", "Audience: 2 Overall: -2 Confidence: 3 Alternative: 1", "Needs work, see 3 comments."},
		},
		SheetFields: {
			{"field #", "field title"},
			{3, "Audience"},
			{5, "Overall"},
			{5, "Overall (duplicate)"},
			{6, "Confidence"},
			{7, "Alternative"},
		},
		SheetMembers: {
			{"First name", "Last name", "Track", "Year of PhD"},
			{"Ada", "Lovelace", "theory", 2005},
			{"Grace", "Hopper", "systems", ""},
		},
	}

	for sheet, rows := range sheets {
		_, err := file.NewSheet(sheet)
		if err != nil {
			t.Fatalf("creating sheet %q: %v", sheet, err)
		}
		for i, row := range rows {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name for row %d: %v", i, err)
			}
			err = file.SetSheetRow(sheet, cellRef, &row)
			if err != nil {
				t.Fatalf("setting row %d of %q: %v", i, sheet, err)
			}
		}
	}

	err := file.DeleteSheet("Sheet1")
	if err != nil {
		t.Fatalf("deleting default sheet: %v", err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}
	return buf
}

func openTestWorkbook(t *testing.T) *Workbook {
	t.Helper()

	wb, err := Open(buildWorkbook(t), zap.NewNop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		err := wb.Close()
		if err != nil {
			t.Error(err)
		}
	})
	return wb
}

func TestReviews(t *testing.T) {
	wb := openTestWorkbook(t)

	got, err := wb.Reviews(nil)
	if err != nil {
		t.Fatalf("Reviews returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reviews, want 2", len(got))
	}

	first := got[0]
	if first.ReviewID != 1 || first.SubmissionID != 100 || first.MemberID != 10 {
		t.Errorf("ids = (%d, %d, %d), want (1, 100, 10)",
			first.ReviewID, first.SubmissionID, first.MemberID)
	}
	if first.MemberName != "ada lovelace" {
		t.Errorf("member name = %q, want %q", first.MemberName, "ada lovelace")
	}
	if first.Score != 4 {
		t.Errorf("score = %d, want 4 (the overall criterion)", first.Score)
	}
	if first.ReviewLength != len("Solid paper.") {
		t.Errorf("review length = %d, want %d", first.ReviewLength, len("Solid paper."))
	}
	if got := first.Time.Format(datetimeLayout); got != "2020-01-01T10:00" {
		t.Errorf("review time = %q, want 2020-01-01T10:00", got)
	}

	if got[1].Score != -2 {
		t.Errorf("second review score = %d, want -2", got[1].Score)
	}
}

func TestMembers(t *testing.T) {
	wb := openTestWorkbook(t)

	got, err := wb.Members()
	if err != nil {
		t.Fatalf("Members returned error: %v", err)
	}

	year := 2005
	want := []review.Reviewer{
		{Name: "ada lovelace", Track: "theory", PhDYear: &year},
		{Name: "grace hopper", Track: "systems"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Members mismatch (-want +got):\n%s", diff)
	}
}

func TestFields(t *testing.T) {
	wb := openTestWorkbook(t)

	got, err := wb.Fields()
	if err != nil {
		t.Fatalf("Fields returned error: %v", err)
	}

	// The first definition of a duplicated field id wins.
	want := map[int]string{
		3: "Audience",
		5: "Overall",
		6: "Confidence",
		7: "Alternative",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestReviewsMissingSheet(t *testing.T) {
	file := excelize.NewFile()
	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}

	wb, err := Open(buf, zap.NewNop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	_, err = wb.Reviews(nil)
	if !errors.Is(err, ErrMissingSheet) {
		t.Errorf("Reviews error = %v, want ErrMissingSheet", err)
	}
}
