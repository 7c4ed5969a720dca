package formSessions

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sus-form-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(f *usecaseFixture) http.Handler {
	controller := NewFormSessionController(zap.NewNop(), f.usecase, time.Second)
	router := chi.NewRouter()
	router.Post("/form-sessions", controller.StartFormSession)
	router.Get("/form-sessions/{session_id}", controller.FindFormSessionByID)
	router.Put("/form-sessions/{session_id}/answers", controller.SetAnswer)
	router.Get("/form-sessions/{session_id}/score", controller.CalculateScore)
	router.Post("/form-sessions/{session_id}/submit", controller.SubmitFormSession)
	return router
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestFormSessionController(t *testing.T) {
	f := newUsecaseFixture()
	router := newTestRouter(f)

	rr := doRequest(router, http.MethodPost, "/form-sessions", `{"patient_id":"patient-1"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var started struct {
		Data responses.FormSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &started))
	sessionID := started.Data.SessionID
	require.NotEmpty(t, sessionID)

	t.Run("Start Requires Patient", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/form-sessions", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Start Rejects Malformed Body", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/form-sessions", `{"patient_id":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Answer Out Of Range Fails Validation", func(t *testing.T) {
		rr := doRequest(router, http.MethodPut, "/form-sessions/"+sessionID+"/answers", `{"link_id":"sus-1","value":9}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Answer Unknown LinkID", func(t *testing.T) {
		rr := doRequest(router, http.MethodPut, "/form-sessions/"+sessionID+"/answers", `{"link_id":"nope","value":3}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Answer Returns Preview", func(t *testing.T) {
		rr := doRequest(router, http.MethodPut, "/form-sessions/"+sessionID+"/answers", `{"link_id":"sus-1","value":4}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"in-progress"`)
		assert.Contains(t, rr.Body.String(), `"valueInteger":4`)
	})

	t.Run("Score Not Ready", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/form-sessions/"+sessionID+"/score", "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Submit Not Ready", func(t *testing.T) {
		rr := doRequest(router, http.MethodPost, "/form-sessions/"+sessionID+"/submit", "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Find Session", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/form-sessions/"+sessionID, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"answered_count":1`)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		rr := doRequest(router, http.MethodGet, "/form-sessions/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
