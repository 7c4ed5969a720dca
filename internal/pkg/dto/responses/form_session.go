package responses

import "sus-form-service/internal/pkg/fhir_dto"

type FormSession struct {
	SessionID     string                          `json:"session_id"`
	PatientID     string                          `json:"patient_id"`
	Title         string                          `json:"title"`
	Questions     []FormQuestion                  `json:"questions"`
	AnsweredCount int                             `json:"answered_count"`
	RequiredCount int                             `json:"required_count"`
	Complete      bool                            `json:"complete"`
	Preview       *fhir_dto.QuestionnaireResponse `json:"preview"`
}

type FormQuestion struct {
	LinkID string `json:"link_id"`
	Text   string `json:"text"`
	Value  *int   `json:"value,omitempty"`
}

type SUSScore struct {
	Score          float64 `json:"score"`
	Interpretation string  `json:"interpretation"`
}

type SubmitFormSession struct {
	QuestionnaireResponse *fhir_dto.QuestionnaireResponse `json:"questionnaire_response"`
	SUSScore
}
