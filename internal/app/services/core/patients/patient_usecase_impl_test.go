package patients

import (
	"context"
	"errors"
	"testing"

	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_FindPatients(t *testing.T) {
	t.Run("Maps FHIR Patients", func(t *testing.T) {
		client := new(mockPatientFhirClient)
		client.On("FindPatients", mock.Anything).Return([]fhir_dto.Patient{
			{ID: "p-1", Gender: "male", BirthDate: "1970-05-01", Name: []fhir_dto.HumanName{{Family: "Mustermann", Given: []string{"Max"}}}},
		}, nil)

		patients, err := NewPatientUsecase(client).FindPatients(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []responses.Patient{
			{ID: "p-1", Fullname: "Mustermann, Max", Gender: "male", BirthDate: "01.05.1970"},
		}, patients)
	})

	t.Run("Surfaces Client Errors Unchanged", func(t *testing.T) {
		clientErr := errors.New("fhir down")
		client := new(mockPatientFhirClient)
		client.On("FindPatients", mock.Anything).Return(nil, clientErr)

		_, err := NewPatientUsecase(client).FindPatients(context.Background())

		assert.Same(t, clientErr, err)
	})
}
