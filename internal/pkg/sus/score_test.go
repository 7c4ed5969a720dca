package sus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateScore(t *testing.T) {
	questionSet := newTestQuestionSet(10)

	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{name: "Midpoint", values: []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}, want: 50.0},
		{name: "Best Case", values: []int{5, 1, 5, 1, 5, 1, 5, 1, 5, 1}, want: 100.0},
		{name: "Worst Case", values: []int{1, 5, 1, 5, 1, 5, 1, 5, 1, 5}, want: 0.0},
		{name: "Fractional", values: []int{4, 3, 3, 3, 3, 3, 3, 3, 3, 3}, want: 52.5},
		{name: "Mixed", values: []int{4, 2, 5, 1, 4, 2, 4, 1, 5, 2}, want: 85.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := CalculateScore(questionSet, answersFromValues(questionSet, tt.values...))

			require.NoError(t, err)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestCalculateScore_NotReady(t *testing.T) {
	questionSet := newTestQuestionSet(10)

	for k := 0; k < len(questionSet); k++ {
		values := make([]int, k)
		for i := range values {
			values[i] = 4
		}

		_, err := CalculateScore(questionSet, answersFromValues(questionSet, values...))

		assert.True(t, errors.Is(err, ErrNotReady), "answered %d questions", k)
	}
}

func TestCalculateScore_InvalidValue(t *testing.T) {
	questionSet := newTestQuestionSet(10)
	complete := answersFromValues(questionSet, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3)

	t.Run("Value Above Range", func(t *testing.T) {
		_, err := CalculateScore(questionSet, complete.With("sus-3", 6))

		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Value Below Range", func(t *testing.T) {
		_, err := CalculateScore(questionSet, complete.With("sus-4", 0))

		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Unknown Link ID", func(t *testing.T) {
		_, err := CalculateScore(questionSet, complete.With("sus-11", 3))

		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.NotErrorIs(t, err, ErrNotReady)
	})

	t.Run("Question Set Is Not SUS", func(t *testing.T) {
		shortSet := newTestQuestionSet(9)

		_, err := CalculateScore(shortSet, answersFromValues(shortSet, 3, 3, 3, 3, 3, 3, 3, 3, 3))

		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestInterpret(t *testing.T) {
	assert.Equal(t, InterpretationGood, Interpret(68))
	assert.Equal(t, InterpretationGood, Interpret(100))
	assert.Equal(t, InterpretationNeedsImprovement, Interpret(67.5))
	assert.Equal(t, InterpretationNeedsImprovement, Interpret(0))
}
