package questionnaires

import (
	"context"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/fhir_dto"
	"sus-form-service/internal/pkg/sus"
)

type questionnaireUsecase struct {
	QuestionnaireFhirClient contracts.QuestionnaireFhirClient
	QuestionnaireID         string
}

func NewQuestionnaireUsecase(questionnaireFhirClient contracts.QuestionnaireFhirClient, questionnaireID string) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireFhirClient: questionnaireFhirClient,
		QuestionnaireID:         questionnaireID,
	}
}

func (uc *questionnaireUsecase) FindActiveQuestionnaire(ctx context.Context) (*fhir_dto.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireFhirClient.FindQuestionnaireByID(ctx, uc.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	err = sus.NewQuestionSet(questionnaire).Validate()
	if err != nil {
		return nil, exceptions.ErrSUSInvalidQuestionnaire(err)
	}

	return questionnaire, nil
}
