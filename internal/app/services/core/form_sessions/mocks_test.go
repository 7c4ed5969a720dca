package formSessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/mock"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

// inMemoryLocker grants a key to one holder at a time.
type inMemoryLocker struct {
	mu    sync.Mutex
	held  map[string]string
	calls int
}

func newInMemoryLocker() *inMemoryLocker {
	return &inMemoryLocker{held: map[string]string{}}
}

func (l *inMemoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	lockValue := fmt.Sprintf("token-%d", l.calls)
	l.held[key] = lockValue
	return true, lockValue, nil
}

func (l *inMemoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}

func (l *inMemoryLocker) hold(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held[key] = "foreign"
}

type mockQuestionnaireUsecase struct {
	mock.Mock
}

func (m *mockQuestionnaireUsecase) FindActiveQuestionnaire(ctx context.Context) (*fhir_dto.Questionnaire, error) {
	args := m.Called(ctx)
	questionnaire, _ := args.Get(0).(*fhir_dto.Questionnaire)
	return questionnaire, args.Error(1)
}

type mockQuestionnaireResponseFhirClient struct {
	mock.Mock
}

func (m *mockQuestionnaireResponseFhirClient) CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	args := m.Called(ctx, request)
	created, _ := args.Get(0).(*fhir_dto.QuestionnaireResponse)
	return created, args.Error(1)
}

type mockSubmissionEventPublisher struct {
	mock.Mock
}

func (m *mockSubmissionEventPublisher) PublishSubmission(ctx context.Context, event *models.SUSResponseSubmittedEvent) error {
	return m.Called(ctx, event).Error(0)
}

// inMemoryFormSessionRepository keeps copies, like the redis backed store does.
type inMemoryFormSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.FormSession
}

func newInMemoryFormSessionRepository() *inMemoryFormSessionRepository {
	return &inMemoryFormSessionRepository{sessions: map[string]models.FormSession{}}
}

func (r *inMemoryFormSessionRepository) Save(ctx context.Context, session *models.FormSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	stored.Answers = session.Answers.Clone()
	r.sessions[session.ID] = stored
	return nil
}

func (r *inMemoryFormSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.FormSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrFormSessionNotFound(fmt.Errorf("missing %s", sessionID), sessionID)
	}
	stored.Answers = stored.Answers.Clone()
	return &stored, nil
}

func (r *inMemoryFormSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *inMemoryFormSessionRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func susQuestionnaire() *fhir_dto.Questionnaire {
	questionnaire := &fhir_dto.Questionnaire{
		ResourceType: "Questionnaire",
		ID:           "german-sus-form",
		Title:        "System Usability Scale",
	}
	for i := 1; i <= 10; i++ {
		questionnaire.Item = append(questionnaire.Item, fhir_dto.QuestionnaireItem{
			LinkID: fmt.Sprintf("sus-%d", i),
			Text:   fmt.Sprintf("Frage %d", i),
		})
	}
	return questionnaire
}
