package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// PollerStop if set will be called during Shutdown to stop the FHIR availability poller
	PollerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.PollerStop != nil {
		b.PollerStop()
		b.Logger.Info("Successfully stopped FHIR availability poller")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	// Sync on stdout/stderr sinks reports EINVAL on some platforms; nothing to recover there.
	_ = b.Logger.Sync()
	return nil
}
