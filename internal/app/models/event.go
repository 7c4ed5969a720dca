package models

import "time"

type SUSResponseSubmittedEvent struct {
	EventType               string    `json:"event_type"`
	QuestionnaireResponseID string    `json:"questionnaire_response_id"`
	PatientID               string    `json:"patient_id"`
	Score                   float64   `json:"score"`
	Interpretation          string    `json:"interpretation"`
	SubmittedAt             time.Time `json:"submitted_at"`
}
