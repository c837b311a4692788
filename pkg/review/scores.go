package review

import (
	"fmt"
	"regexp"
	"strconv"
)

// Criterion field ids from the workbook's Fields sheet. The scores blob of
// every review lists the four criteria in this fixed order.
const (
	FieldAudience    = 3
	FieldOverall     = 5
	FieldConfidence  = 6
	FieldAlternative = 7
)

// NumCriteria is the number of scores embedded in every scores blob.
const NumCriteria = 4

var scoreToken = regexp.MustCompile(`-?\d+`)

// Scores holds the four criterion values of one review, in blob order.
type Scores struct {
	Audience    int
	Overall     int
	Confidence  int
	Alternative int
}

// ParseScores extracts the four criterion scores from a scores blob. Integer
// tokens are read in document order and the first four map positionally to
// audience, overall, confidence, and alternative. Tokens past the fourth are
// ignored: the criteria lead the blob in fixed order, so digits in trailing
// prose must not shift the mapping. Fewer than four tokens fails with
// ErrMalformedScoreText.
func ParseScores(blob string) (Scores, error) {
	tokens := scoreToken.FindAllString(blob, NumCriteria)
	if len(tokens) < NumCriteria {
		return Scores{}, fmt.Errorf("%w: found %d of %d criterion scores in %q",
			ErrMalformedScoreText, len(tokens), NumCriteria, blob)
	}

	values := make([]int, NumCriteria)
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return Scores{}, fmt.Errorf("%w: parsing token %q: %w", ErrMalformedScoreText, token, err)
		}
		values[i] = v
	}

	return Scores{
		Audience:    values[0],
		Overall:     values[1],
		Confidence:  values[2],
		Alternative: values[3],
	}, nil
}
