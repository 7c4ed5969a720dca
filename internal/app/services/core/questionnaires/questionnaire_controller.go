package questionnaires

import (
	"context"
	"errors"
	"net/http"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	RequestTimeout       time.Duration
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase contracts.QuestionnaireUsecase, requestTimeout time.Duration) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *QuestionnaireController) FindActiveQuestionnaire(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.FindActiveQuestionnaire(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionnaireSuccessMessage, response)
}
