// Package review implements the cleaning pipeline over the peer-review
// dataset: score extraction, reviewer joining, first-review selection, and
// bias calculation.
package review

import (
	"strings"
	"time"
)

// Review is one row of the All Reviews sheet after score extraction. Score
// holds only the overall criterion value.
type Review struct {
	ReviewID     int64
	SubmissionID int64
	MemberID     int64
	MemberName   string
	Time         time.Time
	Score        int
	ReviewLength int
}

// Reviewer is one row of the Members sheet. PhDYear is nil when the sheet
// does not record one.
type Reviewer struct {
	Name    string
	Track   string
	PhDYear *int
}

// Enriched is a review joined with its reviewer's metadata.
type Enriched struct {
	Review
	Track   string
	PhDYear *int
}

// FirstReview is the unit of analysis of every downstream chart: the earliest
// review per (member, submission) pair, with its bias attached.
type FirstReview struct {
	Enriched
	Bias float64
}

// NormalizeName lower-cases a first and last name and joins them with a
// single space. This is the join key between reviews and the member roster.
func NormalizeName(first, last string) string {
	return strings.ToLower(strings.TrimSpace(first)) + " " + strings.ToLower(strings.TrimSpace(last))
}
