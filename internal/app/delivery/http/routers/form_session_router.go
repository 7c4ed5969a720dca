package routers

import (
	"fmt"
	formSessions "sus-form-service/internal/app/services/core/form_sessions"
	"sus-form-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFormSessionRoutes(router chi.Router, formSessionController *formSessions.FormSessionController) {
	sessionPath := fmt.Sprintf("/{%s}", constvars.URLParamFormSessionID)

	router.Post("/", formSessionController.StartFormSession)
	router.Get(sessionPath, formSessionController.FindFormSessionByID)
	router.Put(sessionPath+"/answers", formSessionController.SetAnswer)
	router.Get(sessionPath+"/score", formSessionController.CalculateScore)
	router.Post(sessionPath+"/submit", formSessionController.SubmitFormSession)
}
