package formSessions

import (
	"context"
	"errors"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type formSessionRepository struct {
	RedisRepository contracts.RedisRepository
	Expiration      time.Duration
}

// NewFormSessionRepository stores sessions in redis under RedisFormSessionKeyPrefix. Every Save
// rewrites the whole session and renews its expiration.
func NewFormSessionRepository(redisRepository contracts.RedisRepository, expiration time.Duration) contracts.FormSessionRepository {
	return &formSessionRepository{
		RedisRepository: redisRepository,
		Expiration:      expiration,
	}
}

func (r *formSessionRepository) Save(ctx context.Context, session *models.FormSession) error {
	return r.RedisRepository.Set(ctx, formSessionKey(session.ID), session, r.Expiration)
}

func (r *formSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.FormSession, error) {
	data, err := r.RedisRepository.Get(ctx, formSessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrFormSessionNotFound(errors.New("no form session stored under key"), sessionID)
	}

	session := new(models.FormSession)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *formSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	return r.RedisRepository.Delete(ctx, formSessionKey(sessionID))
}

func formSessionKey(sessionID string) string {
	return constvars.RedisFormSessionKeyPrefix + sessionID
}
