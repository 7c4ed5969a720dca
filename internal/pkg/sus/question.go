package sus

import (
	"fmt"
	"sus-form-service/internal/pkg/fhir_dto"
)

const (
	RequiredAnswerCount = 10
	MinAnswerValue      = 1
	MaxAnswerValue      = 5
)

type Question struct {
	LinkID string `json:"link_id"`
	Text   string `json:"text"`
}

// QuestionSet is ordered: the 1-based position of a question decides its polarity.
type QuestionSet []Question

// Polarity of a SUS item. Odd positions are phrased positively, even positions negatively.
type Polarity int

const (
	PolarityPositive Polarity = iota
	PolarityNegative
)

func NewQuestionSet(questionnaire *fhir_dto.Questionnaire) QuestionSet {
	if questionnaire == nil {
		return QuestionSet{}
	}
	questionSet := make(QuestionSet, 0, len(questionnaire.Item))
	for _, item := range questionnaire.Item {
		questionSet = append(questionSet, Question{
			LinkID: item.LinkID,
			Text:   item.Text,
		})
	}
	return questionSet
}

// PolarityAt returns the polarity of the question at the zero-based index.
func (qs QuestionSet) PolarityAt(index int) Polarity {
	if (index+1)%2 == 0 {
		return PolarityNegative
	}
	return PolarityPositive
}

func (qs QuestionSet) Contains(linkID string) bool {
	for _, question := range qs {
		if question.LinkID == linkID {
			return true
		}
	}
	return false
}

// Validate checks that the set is usable as a SUS instrument: exactly RequiredAnswerCount
// questions with non-empty, unique linkIds.
func (qs QuestionSet) Validate() error {
	if len(qs) != RequiredAnswerCount {
		return fmt.Errorf("%w: question set holds %d questions, want %d", ErrInvalidValue, len(qs), RequiredAnswerCount)
	}
	seen := make(map[string]struct{}, len(qs))
	for position, question := range qs {
		if question.LinkID == "" {
			return fmt.Errorf("%w: question %d has no linkId", ErrInvalidValue, position+1)
		}
		if _, ok := seen[question.LinkID]; ok {
			return fmt.Errorf("%w: linkId %q appears more than once", ErrInvalidValue, question.LinkID)
		}
		seen[question.LinkID] = struct{}{}
	}
	return nil
}
