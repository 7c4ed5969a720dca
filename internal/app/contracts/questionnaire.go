package contracts

import (
	"context"
	"sus-form-service/internal/pkg/fhir_dto"
)

type QuestionnaireFhirClient interface {
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error)
}

type QuestionnaireUsecase interface {
	// FindActiveQuestionnaire returns the SUS questionnaire after checking it is a valid instrument.
	FindActiveQuestionnaire(ctx context.Context) (*fhir_dto.Questionnaire, error)
}
