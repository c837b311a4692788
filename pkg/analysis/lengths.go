package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

// MaxReviewLength is the outlier cutoff for the review-length charts.
const MaxReviewLength = 6000

// FilterLength drops rows whose review body is longer than max characters.
func FilterLength(rows []review.FirstReview, max int) []review.FirstReview {
	kept := make([]review.FirstReview, 0, len(rows))
	for _, r := range rows {
		if r.ReviewLength <= max {
			kept = append(kept, r)
		}
	}
	return kept
}

// LengthPoint is the mean bias and mean absolute bias of all reviews sharing
// one review length.
type LengthPoint struct {
	Length  int
	Bias    float64
	AbsBias float64
}

// MeanBiasByLength groups rows by review length and averages bias and
// absolute bias within each group, ascending by length.
func MeanBiasByLength(rows []review.FirstReview) []LengthPoint {
	biases := make(map[int][]float64)
	for _, r := range rows {
		biases[r.ReviewLength] = append(biases[r.ReviewLength], r.Bias)
	}

	points := make([]LengthPoint, 0, len(biases))
	for length, values := range biases {
		absValues := make([]float64, len(values))
		for i, v := range values {
			absValues[i] = math.Abs(v)
		}

		points = append(points, LengthPoint{
			Length:  length,
			Bias:    stat.Mean(values, nil),
			AbsBias: stat.Mean(absValues, nil),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Length < points[j].Length })

	return points
}
