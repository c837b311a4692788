package review

import "errors"

var (
	// ErrMalformedScoreText reports a scores blob with fewer criterion
	// tokens than the format requires.
	ErrMalformedScoreText = errors.New("malformed score text")

	// ErrDuplicateReviewer reports two roster rows that normalize to the
	// same name, which would make the review join ambiguous.
	ErrDuplicateReviewer = errors.New("duplicate reviewer name")
)
