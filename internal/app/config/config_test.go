package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		internalConfig := NewInternalConfig()

		assert.Equal(t, "german-sus-form", internalConfig.FHIR.QuestionnaireID)
		assert.Equal(t, "@every 3s", internalConfig.FHIR.PollCronSpec)
		assert.Equal(t, 60, internalConfig.App.FormSessionExpiredTimeInMinutes)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("FHIR_BASE_URL", "http://fhir.test/fhir")
		t.Setenv("FHIR_POLL_MAX_ATTEMPTS", "5")
		t.Setenv("APP_FORM_SESSION_EXPIRED_TIME_IN_MINUTES", "15")

		internalConfig := NewInternalConfig()

		assert.Equal(t, "http://fhir.test/fhir", internalConfig.FHIR.BaseUrl)
		assert.Equal(t, 5, internalConfig.FHIR.PollMaxAttempts)
		assert.Equal(t, 15, internalConfig.App.FormSessionExpiredTimeInMinutes)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6380")

	driverConfig := NewDriverConfig()

	assert.True(t, driverConfig.RabbitMQ.Enabled)
	assert.Equal(t, "6380", driverConfig.Redis.Port)
}
