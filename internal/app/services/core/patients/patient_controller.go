package patients

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

type PatientController struct {
	Log                 *zap.Logger
	PatientUsecase      contracts.PatientUsecase
	AvailabilityChecker contracts.AvailabilityChecker
	RequestTimeout      time.Duration
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, availabilityChecker contracts.AvailabilityChecker, requestTimeout time.Duration) *PatientController {
	return &PatientController{
		Log:                 logger,
		PatientUsecase:      patientUsecase,
		AvailabilityChecker: availabilityChecker,
		RequestTimeout:      requestTimeout,
	}
}

func (ctrl *PatientController) FindPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.FindPatients(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPatientsSuccessMessage, response)
}

func (ctrl *PatientController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceHealthySuccessMessage, nil)
}

// Readiness answers 503 until the availability poller has seen patients on the FHIR server.
func (ctrl *PatientController) Readiness(w http.ResponseWriter, r *http.Request) {
	if ctrl.AvailabilityChecker == nil || !ctrl.AvailabilityChecker.IsReady() {
		utils.BuildSuccessResponse(w, constvars.StatusServiceUnavailable, constvars.ServiceNotReadyMessage, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceReadySuccessMessage, nil)
}
