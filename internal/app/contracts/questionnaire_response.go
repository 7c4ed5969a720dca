package contracts

import (
	"context"
	"sus-form-service/internal/pkg/fhir_dto"
)

type QuestionnaireResponseFhirClient interface {
	CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error)
}
