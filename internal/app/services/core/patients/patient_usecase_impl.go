package patients

import (
	"context"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/dto/responses"
	"sus-form-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientFhirClient contracts.PatientFhirClient
}

func NewPatientUsecase(patientFhirClient contracts.PatientFhirClient) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
	}
}

func (uc *patientUsecase) FindPatients(ctx context.Context) ([]responses.Patient, error) {
	patientsFhir, err := uc.PatientFhirClient.FindPatients(ctx)
	if err != nil {
		return nil, err
	}

	patients := make([]responses.Patient, 0, len(patientsFhir))
	for _, patientFhir := range patientsFhir {
		patients = append(patients, responses.Patient{
			ID:        patientFhir.ID,
			Fullname:  utils.GetFullName(patientFhir.Name),
			Gender:    patientFhir.Gender,
			BirthDate: utils.FormatBirthDate(patientFhir.BirthDate),
		})
	}
	return patients, nil
}
