package logger

import (
	"testing"

	"sus-form-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	log := NewZapLogger(driverConfig, internalConfig)

	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNewLogrusLogger(t *testing.T) {
	production := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "production"}})
	development := NewLogrusLogger(&config.InternalConfig{App: config.App{Env: "development"}})

	assert.IsType(t, &logrus.JSONFormatter{}, production.Formatter)
	assert.IsType(t, &logrus.TextFormatter{}, development.Formatter)
}
