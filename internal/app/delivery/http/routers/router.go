package routers

import (
	"fmt"
	"strings"
	"sus-form-service/internal/app/config"
	"sus-form-service/internal/app/delivery/http/middlewares"
	formSessions "sus-form-service/internal/app/services/core/form_sessions"
	"sus-form-service/internal/app/services/core/patients"
	"sus-form-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	questionnaireController *questionnaires.QuestionnaireController,
	formSessionController *formSessions.FormSessionController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	router.Use(middlewares.Logging)
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.ErrorHandler)

	router.Get("/healthz", patientController.Health)
	router.Get("/readyz", patientController.Readiness)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/questionnaire", func(r chi.Router) {
				attachQuestionnaireRoutes(r, questionnaireController)
			})

			r.Route("/form-sessions", func(r chi.Router) {
				attachFormSessionRoutes(r, formSessionController)
			})
		})
	})
}
