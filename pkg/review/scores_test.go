package review

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseScores(t *testing.T) {
	blob := "Audience: 3 Overall: -2 Confidence: 4 Alternative: 1 some free text 99"

	got, err := ParseScores(blob)
	if err != nil {
		t.Fatalf("ParseScores returned error: %v", err)
	}

	want := Scores{Audience: 3, Overall: -2, Confidence: 4, Alternative: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScores mismatch (-want +got):\n%s", diff)
	}
}

// Digits past the four criteria belong to prose and must not shift the
// positional mapping.
func TestParseScoresIgnoresTrailingDigits(t *testing.T) {
	got, err := ParseScores("1 2 3 4 the 5th number is noise")
	if err != nil {
		t.Fatalf("ParseScores returned error: %v", err)
	}

	if got.Alternative != 4 {
		t.Errorf("alternative score = %d, want 4", got.Alternative)
	}
}

func TestParseScoresNegative(t *testing.T) {
	got, err := ParseScores("Audience: -3 Overall: -5 Confidence: -1 Alternative: -2")
	if err != nil {
		t.Fatalf("ParseScores returned error: %v", err)
	}

	want := Scores{Audience: -3, Overall: -5, Confidence: -1, Alternative: -2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScores mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScoresTooFewTokens(t *testing.T) {
	_, err := ParseScores("Audience: 3 Overall: 2")
	if !errors.Is(err, ErrMalformedScoreText) {
		t.Errorf("ParseScores error = %v, want ErrMalformedScoreText", err)
	}

	_, err = ParseScores("no numbers at all")
	if !errors.Is(err, ErrMalformedScoreText) {
		t.Errorf("ParseScores error = %v, want ErrMalformedScoreText", err)
	}
}
