package routers

import (
	"sus-form-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, questionnaireController *questionnaires.QuestionnaireController) {
	router.Get("/", questionnaireController.FindActiveQuestionnaire)
}
