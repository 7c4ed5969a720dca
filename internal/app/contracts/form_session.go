package contracts

import (
	"context"
	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/dto/requests"
	"sus-form-service/internal/pkg/dto/responses"
)

type FormSessionRepository interface {
	Save(ctx context.Context, session *models.FormSession) error
	FindByID(ctx context.Context, sessionID string) (*models.FormSession, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type FormSessionUsecase interface {
	StartFormSession(ctx context.Context, request *requests.StartFormSession) (*responses.FormSession, error)
	FindFormSessionByID(ctx context.Context, sessionID string) (*responses.FormSession, error)
	SetAnswer(ctx context.Context, sessionID string, request *requests.SetAnswer) (*responses.FormSession, error)
	CalculateScore(ctx context.Context, sessionID string) (*responses.SUSScore, error)
	SubmitFormSession(ctx context.Context, sessionID string) (*responses.SubmitFormSession, error)
}
