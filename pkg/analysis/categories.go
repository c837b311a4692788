package analysis

import (
	"math"
	"sort"

	"github.com/tylerhslee/peer-review-scores/pkg/review"
)

// Category is one x-axis group of a distribution chart, with the three
// distributions every figure draws.
type Category struct {
	Label   string
	Bias    []float64
	AbsBias []float64
	Lengths []float64
}

func (c *Category) add(r review.FirstReview) {
	c.Bias = append(c.Bias, r.Bias)
	c.AbsBias = append(c.AbsBias, math.Abs(r.Bias))
	c.Lengths = append(c.Lengths, float64(r.ReviewLength))
}

// ByAcceptance groups rows by their submission's acceptance label, in fixed
// accepted/mixed/rejected order. Labels with no rows are omitted.
func ByAcceptance(rows []review.FirstReview) ([]Category, error) {
	labels, err := LabelAcceptance(rows)
	if err != nil {
		return nil, err
	}

	byLabel := map[string]*Category{}
	for _, r := range rows {
		label := labels[r.SubmissionID]
		category := byLabel[label]
		if category == nil {
			category = &Category{Label: label}
			byLabel[label] = category
		}
		category.add(r)
	}

	var categories []Category
	for _, label := range []string{Accepted, Mixed, Rejected} {
		if category, ok := byLabel[label]; ok {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

// ByTrack groups rows by reviewer track, sorted by track name.
func ByTrack(rows []review.FirstReview) []Category {
	byTrack := map[string]*Category{}
	var order []string

	for _, r := range rows {
		category := byTrack[r.Track]
		if category == nil {
			category = &Category{Label: r.Track}
			byTrack[r.Track] = category
			order = append(order, r.Track)
		}
		category.add(r)
	}
	sort.Strings(order)

	categories := make([]Category, len(order))
	for i, track := range order {
		categories[i] = *byTrack[track]
	}
	return categories
}

// ByPhDYear groups rows by PhD-year bucket, ascending by year. Rows without
// a PhD year are excluded.
func ByPhDYear(rows []review.FirstReview) []Category {
	withYear := make([]review.FirstReview, 0, len(rows))
	for _, r := range rows {
		if r.PhDYear != nil {
			withYear = append(withYear, r)
		}
	}
	sort.SliceStable(withYear, func(i, j int) bool {
		return *withYear[i].PhDYear < *withYear[j].PhDYear
	})

	var categories []Category
	for _, r := range withYear {
		label := PhDYearGroup(*r.PhDYear)
		if len(categories) == 0 || categories[len(categories)-1].Label != label {
			categories = append(categories, Category{Label: label})
		}
		categories[len(categories)-1].add(r)
	}
	return categories
}

// Split unpacks categories into the parallel slices the chart helpers take.
func Split(categories []Category) (labels []string, bias, absBias, lengths [][]float64) {
	for _, c := range categories {
		labels = append(labels, c.Label)
		bias = append(bias, c.Bias)
		absBias = append(absBias, c.AbsBias)
		lengths = append(lengths, c.Lengths)
	}
	return labels, bias, absBias, lengths
}
