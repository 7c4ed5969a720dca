package patients

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPatientController_FindPatients(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		usecase := new(mockPatientUsecase)
		usecase.On("FindPatients", mock.Anything).Return([]responses.Patient{{ID: "p-1", Fullname: "Mustermann, Max"}}, nil)
		controller := NewPatientController(zap.NewNop(), usecase, stubAvailability(true), time.Second)

		rr := httptest.NewRecorder()
		controller.FindPatients(rr, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Success bool                `json:"success"`
			Data    []responses.Patient `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Mustermann, Max", body.Data[0].Fullname)
	})

	t.Run("FHIR Failure", func(t *testing.T) {
		usecase := new(mockPatientUsecase)
		usecase.On("FindPatients", mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))
		controller := NewPatientController(zap.NewNop(), usecase, stubAvailability(true), time.Second)

		rr := httptest.NewRecorder()
		controller.FindPatients(rr, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestPatientController_Readiness(t *testing.T) {
	notReady := NewPatientController(zap.NewNop(), nil, stubAvailability(false), time.Second)
	ready := NewPatientController(zap.NewNop(), nil, stubAvailability(true), time.Second)

	rr := httptest.NewRecorder()
	notReady.Readiness(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	ready.Readiness(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	ready.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
