package events

import (
	"context"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type submissionPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
}

// NewSubmissionPublisher publishes to queue over a fresh channel of conn. A nil connection yields
// a publisher that only logs, so the service runs without a broker.
func NewSubmissionPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.SubmissionEventPublisher, error) {
	if conn == nil {
		return &noopSubmissionPublisher{Log: logger}, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &submissionPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *submissionPublisher) PublishSubmission(ctx context.Context, event *models.SUSResponseSubmittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"event_type":       event.EventType,
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.SubmittedAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("submissionPublisher.PublishSubmission succeeded",
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingQuestionnaireResponseIDKey, event.QuestionnaireResponseID),
	)
	return nil
}

type noopSubmissionPublisher struct {
	Log *zap.Logger
}

func (p *noopSubmissionPublisher) PublishSubmission(ctx context.Context, event *models.SUSResponseSubmittedEvent) error {
	p.Log.Debug("noopSubmissionPublisher.PublishSubmission skipped, no broker configured",
		zap.String(constvars.LoggingQuestionnaireResponseIDKey, event.QuestionnaireResponseID),
	)
	return nil
}
