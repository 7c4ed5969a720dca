package fhir_dto

type QuestionnaireResponse struct {
	ResourceType  string                      `json:"resourceType"`
	ID            string                      `json:"id,omitempty"`
	Meta          *Meta                       `json:"meta,omitempty"`
	Status        string                      `json:"status"`
	Questionnaire string                      `json:"questionnaire"`
	Subject       Reference                   `json:"subject"`
	Authored      string                      `json:"authored"`
	Item          []QuestionnaireResponseItem `json:"item"`
}

type QuestionnaireResponseItem struct {
	LinkID string                            `json:"linkId"`
	Text   string                            `json:"text,omitempty"`
	Answer []QuestionnaireResponseItemAnswer `json:"answer,omitempty"`
}

type QuestionnaireResponseItemAnswer struct {
	ValueInteger *int `json:"valueInteger,omitempty"`
}
