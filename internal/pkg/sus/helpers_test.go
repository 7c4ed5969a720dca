package sus

import (
	"fmt"
	"sus-form-service/internal/pkg/fhir_dto"
)

func newTestQuestionnaire(size int) *fhir_dto.Questionnaire {
	questionnaire := &fhir_dto.Questionnaire{
		ResourceType: "Questionnaire",
		ID:           "german-sus-form",
		Title:        "System Usability Scale",
	}
	for i := 1; i <= size; i++ {
		questionnaire.Item = append(questionnaire.Item, fhir_dto.QuestionnaireItem{
			LinkID: fmt.Sprintf("sus-%d", i),
			Text:   fmt.Sprintf("Frage %d", i),
			Type:   "integer",
		})
	}
	return questionnaire
}

func newTestQuestionSet(size int) QuestionSet {
	return NewQuestionSet(newTestQuestionnaire(size))
}

func answersFromValues(questionSet QuestionSet, values ...int) AnswerMap {
	answers := AnswerMap{}
	for i, value := range values {
		answers[questionSet[i].LinkID] = value
	}
	return answers
}
