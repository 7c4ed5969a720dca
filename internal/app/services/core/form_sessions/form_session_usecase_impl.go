package formSessions

import (
	"context"
	"errors"
	"fmt"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/app/models"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/dto/requests"
	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/sus"
	"sus-form-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const formSessionLockExpiration = 15 * time.Second

type formSessionUsecase struct {
	FormSessionRepository           contracts.FormSessionRepository
	LockerService                   contracts.LockerService
	QuestionnaireUsecase            contracts.QuestionnaireUsecase
	QuestionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient
	SubmissionEventPublisher        contracts.SubmissionEventPublisher
	ResponseBuilder                 *sus.ResponseBuilder
	Clock                           func() time.Time
	Log                             *zap.Logger
}

func NewFormSessionUsecase(
	formSessionRepository contracts.FormSessionRepository,
	lockerService contracts.LockerService,
	questionnaireUsecase contracts.QuestionnaireUsecase,
	questionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient,
	submissionEventPublisher contracts.SubmissionEventPublisher,
	responseBuilder *sus.ResponseBuilder,
	logger *zap.Logger,
) contracts.FormSessionUsecase {
	return &formSessionUsecase{
		FormSessionRepository:           formSessionRepository,
		LockerService:                   lockerService,
		QuestionnaireUsecase:            questionnaireUsecase,
		QuestionnaireResponseFhirClient: questionnaireResponseFhirClient,
		SubmissionEventPublisher:        submissionEventPublisher,
		ResponseBuilder:                 responseBuilder,
		Clock:                           time.Now,
		Log:                             logger,
	}
}

func (uc *formSessionUsecase) StartFormSession(ctx context.Context, request *requests.StartFormSession) (*responses.FormSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("formSessionUsecase.StartFormSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	questionnaire, err := uc.QuestionnaireUsecase.FindActiveQuestionnaire(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.Clock()
	session := &models.FormSession{
		ID:              uuid.New().String(),
		PatientID:       request.PatientID,
		QuestionnaireID: questionnaire.ID,
		Title:           questionnaire.Title,
		Questions:       sus.NewQuestionSet(questionnaire),
		Answers:         sus.AnswerMap{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.FormSessionRepository.Save(ctx, session)
	if err != nil {
		uc.Log.Error("formSessionUsecase.StartFormSession error saving form session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.StartFormSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return uc.buildFormSessionResponse(session), nil
}

func (uc *formSessionUsecase) FindFormSessionByID(ctx context.Context, sessionID string) (*responses.FormSession, error) {
	session, err := uc.FormSessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildFormSessionResponse(session), nil
}

// SetAnswer stores one slider value and returns the live in-progress preview. Values outside
// the slider range and unknown linkIds are rejected before anything is written.
func (uc *formSessionUsecase) SetAnswer(ctx context.Context, sessionID string, request *requests.SetAnswer) (*responses.FormSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("formSessionUsecase.SetAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingLinkIDKey, request.LinkID),
		zap.Int(constvars.LoggingAnswerValueKey, request.Value),
	)

	unlock, err := uc.lockFormSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.FormSessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = sus.ValidateAnswer(session.Questions, request.LinkID, request.Value)
	if err != nil {
		return nil, exceptions.ErrSUSInvalidAnswer(err)
	}

	next := session.WithAnswer(request.LinkID, request.Value, uc.Clock())
	err = uc.FormSessionRepository.Save(ctx, &next)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("formSessionUsecase.SetAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingAnsweredCountKey, len(next.Answers)),
	)
	return uc.buildFormSessionResponse(&next), nil
}

func (uc *formSessionUsecase) CalculateScore(ctx context.Context, sessionID string) (*responses.SUSScore, error) {
	session, err := uc.FormSessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	score, err := calculateScore(session)
	if err != nil {
		return nil, err
	}
	return &responses.SUSScore{
		Score:          score,
		Interpretation: string(sus.Interpret(score)),
	}, nil
}

// SubmitFormSession posts the completed response to the FHIR server. The session is removed
// afterwards, so every session is submitted at most once.
func (uc *formSessionUsecase) SubmitFormSession(ctx context.Context, sessionID string) (*responses.SubmitFormSession, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("formSessionUsecase.SubmitFormSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := uc.lockFormSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.FormSessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	score, err := calculateScore(session)
	if err != nil {
		return nil, err
	}
	interpretation := sus.Interpret(score)

	document := uc.ResponseBuilder.Build(session.Questions, session.Answers, session.PatientID, true)
	created, err := uc.QuestionnaireResponseFhirClient.CreateQuestionnaireResponse(ctx, document)
	if err != nil {
		uc.Log.Error("formSessionUsecase.SubmitFormSession error creating questionnaire response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	event := &models.SUSResponseSubmittedEvent{
		EventType:               constvars.EventTypeSUSResponseSubmitted,
		QuestionnaireResponseID: created.ID,
		PatientID:               session.PatientID,
		Score:                   score,
		Interpretation:          string(interpretation),
		SubmittedAt:             uc.Clock().UTC(),
	}
	err = uc.SubmissionEventPublisher.PublishSubmission(ctx, event)
	if err != nil {
		uc.Log.Warn("formSessionUsecase.SubmitFormSession error publishing submission event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireResponseIDKey, created.ID),
			zap.Error(err),
		)
	}

	err = uc.FormSessionRepository.DeleteByID(ctx, sessionID)
	if err != nil {
		uc.Log.Warn("formSessionUsecase.SubmitFormSession error deleting submitted form session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}

	uc.Log.Info("formSessionUsecase.SubmitFormSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireResponseIDKey, created.ID),
		zap.Float64(constvars.LoggingScoreKey, score),
	)
	return &responses.SubmitFormSession{
		QuestionnaireResponse: created,
		SUSScore: responses.SUSScore{
			Score:          score,
			Interpretation: string(interpretation),
		},
	}, nil
}

// lockFormSession serializes writers of one session. Concurrent writers get a conflict instead
// of waiting.
func (uc *formSessionUsecase) lockFormSession(ctx context.Context, sessionID string) (func(), error) {
	key := constvars.RedisFormSessionLockKeyPrefix + sessionID
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, formSessionLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrFormSessionBusy(errors.New("lock held by another request"), sessionID)
	}

	return func() {
		err := uc.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue)
		if err != nil {
			uc.Log.Warn("formSessionUsecase.lockFormSession error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}, nil
}

func calculateScore(session *models.FormSession) (float64, error) {
	score, err := sus.CalculateScore(session.Questions, session.Answers)
	switch {
	case errors.Is(err, sus.ErrNotReady):
		return 0, exceptions.ErrSUSScoreNotReady(err)
	case errors.Is(err, sus.ErrInvalidValue):
		return 0, exceptions.ErrSUSInvalidAnswer(err)
	case err != nil:
		return 0, fmt.Errorf("calculate score: %w", err)
	}
	return score, nil
}

func (uc *formSessionUsecase) buildFormSessionResponse(session *models.FormSession) *responses.FormSession {
	questions := make([]responses.FormQuestion, 0, len(session.Questions))
	for _, question := range session.Questions {
		formQuestion := responses.FormQuestion{
			LinkID: question.LinkID,
			Text:   question.Text,
		}
		if value, ok := session.Answers[question.LinkID]; ok {
			formQuestion.Value = &value
		}
		questions = append(questions, formQuestion)
	}

	return &responses.FormSession{
		SessionID:     session.ID,
		PatientID:     session.PatientID,
		Title:         session.Title,
		Questions:     questions,
		AnsweredCount: len(session.Answers),
		RequiredCount: len(session.Questions),
		Complete:      sus.IsComplete(session.Questions, session.Answers),
		Preview:       uc.ResponseBuilder.Build(session.Questions, session.Answers, session.PatientID, false),
	}
}
