package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func newSubmittedEvent() *models.SUSResponseSubmittedEvent {
	return &models.SUSResponseSubmittedEvent{
		EventType:               "sus.response.submitted",
		QuestionnaireResponseID: "qr-42",
		PatientID:               "p-1",
		Score:                   72.5,
		Interpretation:          "good",
		SubmittedAt:             time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionPublisher_PublishSubmission(t *testing.T) {
	t.Run("Publishes JSON To Queue", func(t *testing.T) {
		channel := new(mockChannel)
		publisher := &submissionPublisher{Channel: channel, Queue: "sus_responses", Log: zap.NewNop()}

		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "sus_responses", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) {
				published = args.Get(5).(amqp091.Publishing)
			}).
			Return(nil)

		err := publisher.PublishSubmission(context.Background(), newSubmittedEvent())

		require.NoError(t, err)
		channel.AssertExpectations(t)
		assert.Equal(t, "application/json", published.ContentType)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)

		var decoded models.SUSResponseSubmittedEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "qr-42", decoded.QuestionnaireResponseID)
		assert.Equal(t, 72.5, decoded.Score)
	})

	t.Run("Broker Error", func(t *testing.T) {
		channel := new(mockChannel)
		publisher := &submissionPublisher{Channel: channel, Queue: "sus_responses", Log: zap.NewNop()}
		brokerErr := errors.New("channel closed")
		channel.On("PublishWithContext", mock.Anything, "", "sus_responses", false, false, mock.Anything).Return(brokerErr)

		err := publisher.PublishSubmission(context.Background(), newSubmittedEvent())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.ErrorIs(t, err, brokerErr)
	})
}

func TestNewSubmissionPublisher_WithoutBroker(t *testing.T) {
	publisher, err := NewSubmissionPublisher(nil, "sus_responses", zap.NewNop())

	require.NoError(t, err)
	assert.NoError(t, publisher.PublishSubmission(context.Background(), newSubmittedEvent()))
}
