// Package analysis prepares first-review rows for charting: acceptance
// labeling, PhD-year bucketing, and the per-category and per-length
// aggregations the charts consume.
package analysis

import (
	"errors"
	"fmt"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

// Acceptance labels. A submission whose reviews all lean the same way is
// accepted or rejected by the sign of its score sum; disagreeing signs make
// it mixed.
const (
	Accepted = "accepted"
	Rejected = "rejected"
	Mixed    = "mixed"
)

// ErrMalformedScore reports a zero score, whose sign is undefined.
var ErrMalformedScore = errors.New("malformed score")

// LabelAcceptance classifies every submission appearing in rows. Two
// distinct score signs within a submission give Mixed regardless of the sum;
// otherwise the sum decides. A sum of exactly zero can only happen with
// disagreeing signs, so it also reads as Mixed.
func LabelAcceptance(rows []review.FirstReview) (map[int64]string, error) {
	type tally struct {
		sum      int
		positive bool
		negative bool
	}

	tallies := make(map[int64]*tally)
	for _, r := range rows {
		if r.Score == 0 {
			return nil, fmt.Errorf("%w: review %d has score 0", ErrMalformedScore, r.ReviewID)
		}

		t := tallies[r.SubmissionID]
		if t == nil {
			t = &tally{}
			tallies[r.SubmissionID] = t
		}

		t.sum += r.Score
		if r.Score > 0 {
			t.positive = true
		} else {
			t.negative = true
		}
	}

	labels := make(map[int64]string, len(tallies))
	for id, t := range tallies {
		switch {
		case t.positive && t.negative:
			labels[id] = Mixed
		case t.sum > 0:
			labels[id] = Accepted
		case t.sum < 0:
			labels[id] = Rejected
		default:
			labels[id] = Mixed
		}
	}

	return labels, nil
}
