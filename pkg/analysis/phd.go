package analysis

import "strconv"

// PhDYearGroup buckets a PhD year for the x axis of the PhD charts. The
// oldest and most recent records are clumped; everything between reads as
// the literal year.
func PhDYearGroup(year int) string {
	switch {
	case year <= 1990:
		return "~1990"
	case year > 2017:
		return "2018~"
	default:
		return strconv.Itoa(year)
	}
}
