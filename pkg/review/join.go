package review

import "fmt"

// Roster maps normalized reviewer names to their metadata.
type Roster map[string]Reviewer

// BuildRoster indexes reviewers by normalized name. Two rows normalizing to
// the same name fail rather than silently shadowing each other.
func BuildRoster(reviewers []Reviewer) (Roster, error) {
	roster := make(Roster, len(reviewers))
	for _, r := range reviewers {
		if _, seen := roster[r.Name]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReviewer, r.Name)
		}
		roster[r.Name] = r
	}
	return roster, nil
}

// Join merges reviews with reviewer metadata by normalized name. Reviews with
// no roster entry are not enriched; their ids are returned so the caller can
// log, fail, or drop them.
func Join(reviews []Review, roster Roster) (matched []Enriched, unmatched []int64) {
	for _, rev := range reviews {
		reviewer, ok := roster[rev.MemberName]
		if !ok {
			unmatched = append(unmatched, rev.ReviewID)
			continue
		}

		matched = append(matched, Enriched{
			Review:  rev,
			Track:   reviewer.Track,
			PhDYear: reviewer.PhDYear,
		})
	}

	return matched, unmatched
}
