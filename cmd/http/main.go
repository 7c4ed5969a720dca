package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sus-form-service/internal/app/config"
	"sus-form-service/internal/app/delivery/http/middlewares"
	"sus-form-service/internal/app/delivery/http/routers"
	"sus-form-service/internal/app/drivers/database"
	"sus-form-service/internal/app/drivers/logger"
	"sus-form-service/internal/app/drivers/messaging"
	formSessions "sus-form-service/internal/app/services/core/form_sessions"
	"sus-form-service/internal/app/services/core/patients"
	"sus-form-service/internal/app/services/core/questionnaires"
	fhirPatients "sus-form-service/internal/app/services/fhir_spark/patients"
	fhirQuestionnaireResponses "sus-form-service/internal/app/services/fhir_spark/questionnaire_responses"
	fhirQuestionnaires "sus-form-service/internal/app/services/fhir_spark/questionnaires"
	"sus-form-service/internal/app/services/shared/events"
	"sus-form-service/internal/app/services/shared/locker"
	"sus-form-service/internal/app/services/shared/redis"
	"sus-form-service/internal/pkg/sus"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	sessionExpiration := time.Duration(bootstrap.InternalConfig.App.FormSessionExpiredTimeInMinutes) * time.Minute
	fhirBaseUrl := bootstrap.InternalConfig.FHIR.BaseUrl

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	accessLogger := logger.NewLogrusLogger(bootstrap.InternalConfig)

	// FHIR clients
	patientFhirClient := fhirPatients.NewPatientFhirClient(fhirBaseUrl, bootstrap.Logger)
	questionnaireFhirClient := fhirQuestionnaires.NewQuestionnaireFhirClient(fhirBaseUrl, bootstrap.Logger)
	questionnaireResponseFhirClient := fhirQuestionnaireResponses.NewQuestionnaireResponseFhirClient(fhirBaseUrl, bootstrap.Logger)

	// Submission events
	submissionPublisher, err := events.NewSubmissionPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQSubmissionQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up submission publisher", zap.Error(err))
	}

	// Patient
	availabilityPoller := patients.NewAvailabilityPoller(
		bootstrap.Logger,
		patientFhirClient,
		bootstrap.InternalConfig.FHIR.PollCronSpec,
		bootstrap.InternalConfig.FHIR.PollMaxAttempts,
	)
	availabilityPoller.Start(context.Background())
	bootstrap.PollerStop = availabilityPoller.Stop

	patientUsecase := patients.NewPatientUsecase(patientFhirClient)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase, availabilityPoller, requestTimeout)

	// Questionnaire
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireFhirClient, bootstrap.InternalConfig.FHIR.QuestionnaireID)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase, requestTimeout)

	// Form session
	formSessionRepository := formSessions.NewFormSessionRepository(redisRepository, sessionExpiration)
	formSessionUsecase := formSessions.NewFormSessionUsecase(
		formSessionRepository,
		lockService,
		questionnaireUsecase,
		questionnaireResponseFhirClient,
		submissionPublisher,
		sus.NewResponseBuilder(bootstrap.InternalConfig.FHIR.QuestionnaireID),
		bootstrap.Logger,
	)
	formSessionController := formSessions.NewFormSessionController(bootstrap.Logger, formSessionUsecase, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		accessLogger,
		middlewares,
		patientController,
		questionnaireController,
		formSessionController,
	)
}
