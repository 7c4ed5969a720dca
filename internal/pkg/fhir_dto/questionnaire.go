package fhir_dto

type Questionnaire struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Meta         *Meta               `json:"meta,omitempty"`
	URL          string              `json:"url,omitempty"`
	Name         string              `json:"name,omitempty"`
	Title        string              `json:"title,omitempty"`
	Status       string              `json:"status,omitempty"`
	Language     string              `json:"language,omitempty"`
	Item         []QuestionnaireItem `json:"item,omitempty"`
}

type QuestionnaireItem struct {
	LinkID   string              `json:"linkId"`
	Text     string              `json:"text,omitempty"`
	Type     string              `json:"type,omitempty"`
	Required bool                `json:"required,omitempty"`
	Code     []Coding            `json:"code,omitempty"`
	Item     []QuestionnaireItem `json:"item,omitempty"`
}
