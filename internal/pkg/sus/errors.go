package sus

import "errors"

var (
	// ErrNotReady is returned when a score is requested before every question has an answer.
	ErrNotReady = errors.New("sus: not every question is answered yet")

	// ErrInvalidValue is returned for answers outside [MinAnswerValue, MaxAnswerValue], answers
	// keyed to a linkId the question set does not contain, and question sets that are not a
	// SUS instrument.
	ErrInvalidValue = errors.New("sus: invalid value")
)
