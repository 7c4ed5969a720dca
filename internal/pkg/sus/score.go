package sus

import "fmt"

const (
	scoreMultiplier = 2.5

	// GoodUsabilityThreshold is the conventional SUS average; scores at or above it read as good.
	GoodUsabilityThreshold = 68.0
)

type Interpretation string

const (
	InterpretationGood             Interpretation = "good"
	InterpretationNeedsImprovement Interpretation = "needs-improvement"
)

// CalculateScore returns the SUS score in [0,100]. Odd positions contribute value-1, even
// positions 5-value, and the sum is scaled by 2.5.
//
// ErrNotReady means some question has no answer yet. ErrInvalidValue covers question sets that
// are not a SUS instrument, out of range values and answers to unknown linkIds.
func CalculateScore(questionSet QuestionSet, answers AnswerMap) (float64, error) {
	if err := questionSet.Validate(); err != nil {
		return 0, err
	}
	if err := ValidateAnswers(questionSet, answers); err != nil {
		return 0, err
	}
	if !IsComplete(questionSet, answers) {
		return 0, fmt.Errorf("%w: %d of %d answered", ErrNotReady, len(answers), len(questionSet))
	}

	total := 0
	for index, question := range questionSet {
		total += contribution(questionSet.PolarityAt(index), answers[question.LinkID])
	}
	return float64(total) * scoreMultiplier, nil
}

func contribution(polarity Polarity, value int) int {
	if polarity == PolarityNegative {
		return MaxAnswerValue - value
	}
	return value - MinAnswerValue
}

func Interpret(score float64) Interpretation {
	if score >= GoodUsabilityThreshold {
		return InterpretationGood
	}
	return InterpretationNeedsImprovement
}
