package models

import (
	"sus-form-service/internal/pkg/sus"
	"time"
)

// FormSession is the server side state of one patient filling in the questionnaire. The
// Answers map is replaced on every change and never mutated in place.
type FormSession struct {
	ID              string          `json:"id"`
	PatientID       string          `json:"patient_id"`
	QuestionnaireID string          `json:"questionnaire_id"`
	Title           string          `json:"title"`
	Questions       sus.QuestionSet `json:"questions"`
	Answers         sus.AnswerMap   `json:"answers"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// WithAnswer returns a copy of the session that holds the new answer.
func (s FormSession) WithAnswer(linkID string, value int, at time.Time) FormSession {
	s.Answers = s.Answers.With(linkID, value)
	s.UpdatedAt = at
	return s
}
