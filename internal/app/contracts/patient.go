package contracts

import (
	"context"
	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	FindPatients(ctx context.Context) ([]fhir_dto.Patient, error)
}

type PatientUsecase interface {
	FindPatients(ctx context.Context) ([]responses.Patient, error)
}

type AvailabilityChecker interface {
	IsReady() bool
}
