package utils

import (
	"errors"
	"fmt"
	"strings"
	"sus-form-service/internal/pkg/fhir_dto"
	"time"

	"github.com/goccy/go-json"
)

// ExtractFHIRError turns the body of a non-success FHIR reply into an error, preferring the
// diagnostics of the first OperationOutcome issue.
func ExtractFHIRError(body []byte, statusCode int) error {
	var outcome fhir_dto.OperationOutcome
	err := json.Unmarshal(body, &outcome)
	if err == nil && len(outcome.Issue) > 0 && outcome.Issue[0].Diagnostics != "" {
		return errors.New(outcome.Issue[0].Diagnostics)
	}
	return fmt.Errorf("unexpected status code from FHIR server: %d", statusCode)
}

// GetFullName renders the first name of a patient as "Family, Given".
func GetFullName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}
	name := names[0]
	if name.Text != "" && name.Family == "" {
		return name.Text
	}
	given := strings.Join(name.Given, " ")
	switch {
	case name.Family == "":
		return given
	case given == "":
		return name.Family
	default:
		return fmt.Sprintf("%s, %s", name.Family, given)
	}
}

// FormatBirthDate renders a FHIR date (YYYY-MM-DD) as DD.MM.YYYY. Other inputs are returned as is.
func FormatBirthDate(birthDate string) string {
	parsed, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return birthDate
	}
	return parsed.Format("02.01.2006")
}
