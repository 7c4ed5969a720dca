package contracts

import (
	"context"
	"sus-form-service/internal/app/models"
)

type SubmissionEventPublisher interface {
	PublishSubmission(ctx context.Context, event *models.SUSResponseSubmittedEvent) error
}
