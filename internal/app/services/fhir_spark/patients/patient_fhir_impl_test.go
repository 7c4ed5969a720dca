package patients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sus-form-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const patientBundle = `{
  "resourceType": "Bundle",
  "type": "searchset",
  "total": 2,
  "entry": [
    {"resource": {"resourceType": "Patient", "id": "p-1", "gender": "male", "birthDate": "1970-05-01", "name": [{"family": "Mustermann", "given": ["Max"]}]}},
    {"resource": {"resourceType": "Patient", "id": "p-2", "gender": "female", "birthDate": "1985-11-23", "name": [{"family": "Musterfrau", "given": ["Erika"]}]}}
  ]
}`

func TestPatientFhirClient_FindPatients(t *testing.T) {
	t.Run("Bundle With Patients", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/fhir/Patient", r.URL.Path)
			w.Header().Set("Content-Type", "application/fhir+json")
			w.Write([]byte(patientBundle))
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL+"/fhir", zap.NewNop())
		patients, err := client.FindPatients(context.Background())

		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, "p-1", patients[0].ID)
		assert.Equal(t, "Mustermann", patients[0].Name[0].Family)
		assert.Equal(t, "1985-11-23", patients[1].BirthDate)
	})

	t.Run("Empty Bundle", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":0}`))
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL, zap.NewNop())
		patients, err := client.FindPatients(context.Background())

		require.NoError(t, err)
		assert.Empty(t, patients)
	})

	t.Run("Operation Outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"fatal","diagnostics":"database offline"}]}`))
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL, zap.NewNop())
		_, err := client.FindPatients(context.Background())

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "database offline")
	})

	t.Run("Server Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewPatientFhirClient(server.URL, zap.NewNop())
		_, err := client.FindPatients(context.Background())

		require.Error(t, err)
	})
}
