package sus

import (
	"fmt"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/fhir_dto"
	"time"
)

type ResponseBuilder struct {
	QuestionnaireID string
	Clock           func() time.Time
}

func NewResponseBuilder(questionnaireID string) *ResponseBuilder {
	if questionnaireID == "" {
		questionnaireID = constvars.FhirSUSQuestionnaireID
	}
	return &ResponseBuilder{
		QuestionnaireID: questionnaireID,
		Clock:           time.Now,
	}
}

// Build emits one item per answered question, in question set order. Unanswered questions are
// left out. The status follows final only; the item count never promotes a draft to completed.
// An empty subjectID still yields a subject reference, it just cannot be resolved.
func (b *ResponseBuilder) Build(questionSet QuestionSet, answers AnswerMap, subjectID string, final bool) *fhir_dto.QuestionnaireResponse {
	items := make([]fhir_dto.QuestionnaireResponseItem, 0, len(answers))
	for _, question := range questionSet {
		value, ok := answers[question.LinkID]
		if !ok {
			continue
		}
		valueInteger := value
		items = append(items, fhir_dto.QuestionnaireResponseItem{
			LinkID: question.LinkID,
			Text:   question.Text,
			Answer: []fhir_dto.QuestionnaireResponseItemAnswer{
				{ValueInteger: &valueInteger},
			},
		})
	}

	status := constvars.FhirQuestionnaireResponseStatusInProgress
	if final {
		status = constvars.FhirQuestionnaireResponseStatusCompleted
	}

	return &fhir_dto.QuestionnaireResponse{
		ResourceType:  constvars.ResourceQuestionnaireResponse,
		Status:        status,
		Questionnaire: fmt.Sprintf(constvars.FhirReferenceFormat, constvars.ResourceQuestionnaire, b.QuestionnaireID),
		Subject: fhir_dto.Reference{
			Reference: fmt.Sprintf(constvars.FhirReferenceFormat, constvars.ResourcePatient, subjectID),
		},
		Authored: b.now().UTC().Format(constvars.FhirAuthoredLayout),
		Item:     items,
	}
}

func (b *ResponseBuilder) now() time.Time {
	if b.Clock == nil {
		return time.Now()
	}
	return b.Clock()
}
