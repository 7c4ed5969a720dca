package patients

import (
	"context"

	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/mock"
)

type mockPatientFhirClient struct {
	mock.Mock
}

func (m *mockPatientFhirClient) FindPatients(ctx context.Context) ([]fhir_dto.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]fhir_dto.Patient)
	return patients, args.Error(1)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) FindPatients(ctx context.Context) ([]responses.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

type stubAvailability bool

func (s stubAvailability) IsReady() bool { return bool(s) }
