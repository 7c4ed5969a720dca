package formSessions

import (
	"context"
	"errors"
	"net/http"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/dto/requests"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FormSessionController struct {
	Log                *zap.Logger
	FormSessionUsecase contracts.FormSessionUsecase
	RequestTimeout     time.Duration
}

func NewFormSessionController(logger *zap.Logger, formSessionUsecase contracts.FormSessionUsecase, requestTimeout time.Duration) *FormSessionController {
	return &FormSessionController{
		Log:                logger,
		FormSessionUsecase: formSessionUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *FormSessionController) StartFormSession(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.StartFormSession)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.StartFormSession(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartFormSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) FindFormSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.FindFormSessionByID(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindFormSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) SetAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	// Bind body to request
	request := new(requests.SetAnswer)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.SetAnswer(ctx, sessionID, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetAnswerSuccessMessage, response)
}

func (ctrl *FormSessionController) CalculateScore(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.CalculateScore(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateScoreSuccessMessage, response)
}

func (ctrl *FormSessionController) SubmitFormSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.FormSessionUsecase.SubmitFormSession(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitFormSessionSuccessMessage, response)
}

func (ctrl *FormSessionController) sessionIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := chi.URLParam(r, constvars.URLParamFormSessionID)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("empty session id"), constvars.URLParamFormSessionID))
		return "", false
	}
	return sessionID, true
}

func (ctrl *FormSessionController) buildUsecaseErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
