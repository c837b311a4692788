package review

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CalculateBias attaches a bias to every review of each submission with at
// least two reviews. The bias of a review scoring x on a submission with n
// reviews of mean m is x − (m·n − x)/(n−1), the deviation of x from the mean
// of the other n−1 reviews. That quantity is undefined for a single-review
// submission, so those submissions are excluded and their ids returned in
// ascending order. Input order is preserved in the output.
func CalculateBias(reviews []Enriched) (biased []FirstReview, singles []int64) {
	groups := make(map[int64][]float64)
	for _, r := range reviews {
		groups[r.SubmissionID] = append(groups[r.SubmissionID], float64(r.Score))
	}

	for _, r := range reviews {
		scores := groups[r.SubmissionID]
		if len(scores) < 2 {
			continue
		}

		n := float64(len(scores))
		m := stat.Mean(scores, nil)
		x := float64(r.Score)

		biased = append(biased, FirstReview{
			Enriched: r,
			Bias:     x - (m*n-x)/(n-1),
		})
	}

	for id, scores := range groups {
		if len(scores) < 2 {
			singles = append(singles, id)
		}
	}
	sort.Slice(singles, func(i, j int) bool { return singles[i] < singles[j] })

	return biased, singles
}
