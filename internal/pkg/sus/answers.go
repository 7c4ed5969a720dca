package sus

import "fmt"

// AnswerMap maps a question linkId to its slider value.
type AnswerMap map[string]int

// With returns a copy of the map holding the given answer. The receiver is left untouched.
func (a AnswerMap) With(linkID string, value int) AnswerMap {
	next := make(AnswerMap, len(a)+1)
	for key, existing := range a {
		next[key] = existing
	}
	next[linkID] = value
	return next
}

func (a AnswerMap) Clone() AnswerMap {
	next := make(AnswerMap, len(a))
	for key, value := range a {
		next[key] = value
	}
	return next
}

// ValidateAnswer rejects a value outside [MinAnswerValue, MaxAnswerValue] or a linkId that is
// not part of the question set.
func ValidateAnswer(questionSet QuestionSet, linkID string, value int) error {
	if !questionSet.Contains(linkID) {
		return fmt.Errorf("%w: linkId %q is not part of the questionnaire", ErrInvalidValue, linkID)
	}
	if value < MinAnswerValue || value > MaxAnswerValue {
		return fmt.Errorf("%w: answer %d for %q is outside [%d,%d]", ErrInvalidValue, value, linkID, MinAnswerValue, MaxAnswerValue)
	}
	return nil
}

// ValidateAnswers applies ValidateAnswer to every entry of the map.
func ValidateAnswers(questionSet QuestionSet, answers AnswerMap) error {
	for linkID, value := range answers {
		err := ValidateAnswer(questionSet, linkID, value)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsComplete reports whether the answered linkIds are exactly the linkIds of the question set.
func IsComplete(questionSet QuestionSet, answers AnswerMap) bool {
	if len(questionSet) == 0 || len(answers) != len(questionSet) {
		return false
	}
	for _, question := range questionSet {
		if _, ok := answers[question.LinkID]; !ok {
			return false
		}
	}
	return true
}
