package review

import "sort"

// SelectFirst sorts enriched reviews by (member, submission, time) and keeps
// the earliest review of each (member, submission) pair. The sort is stable,
// so reviews sharing a timestamp keep their workbook order and the first row
// wins ties.
func SelectFirst(reviews []Enriched) []Enriched {
	sorted := make([]Enriched, len(reviews))
	copy(sorted, reviews)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.MemberID != b.MemberID {
			return a.MemberID < b.MemberID
		}
		if a.SubmissionID != b.SubmissionID {
			return a.SubmissionID < b.SubmissionID
		}
		return a.Time.Before(b.Time)
	})

	type pair struct {
		member     int64
		submission int64
	}

	seen := make(map[pair]struct{}, len(sorted))
	first := sorted[:0]
	for _, r := range sorted {
		key := pair{member: r.MemberID, submission: r.SubmissionID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		first = append(first, r)
	}

	return first
}
