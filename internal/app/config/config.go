package config

import (
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            utils.GetEnvString("APP_PORT", ":8000"),
			Version:                         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                        utils.GetEnvString("APP_TIMEZONE", "Europe/Berlin"),
			EndpointPrefix:                  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:         utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			FormSessionExpiredTimeInMinutes: utils.GetEnvInt("APP_FORM_SESSION_EXPIRED_TIME_IN_MINUTES", 60),
			RabbitMQSubmissionQueue:         utils.GetEnvString("APP_RABBITMQ_SUBMISSION_QUEUE", "sus_responses"),
			AllowedOrigins:                  utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
		},
		FHIR: FHIR{
			BaseUrl:         utils.GetEnvString("FHIR_BASE_URL", "http://localhost:8080/fhir"),
			QuestionnaireID: utils.GetEnvString("FHIR_QUESTIONNAIRE_ID", constvars.FhirSUSQuestionnaireID),
			PollCronSpec:    utils.GetEnvString("FHIR_POLL_CRON_SPEC", "@every 3s"),
			PollMaxAttempts: utils.GetEnvInt("FHIR_POLL_MAX_ATTEMPTS", 0),
		},
	}
}
