package constvars

const (
	ResourcePatient               = "Patient"
	ResourceBundle                = "Bundle"
	ResourceQuestionnaire         = "Questionnaire"
	ResourceQuestionnaireResponse = "QuestionnaireResponse"
	ResourceOperationOutcome      = "OperationOutcome"
)

const (
	FhirQuestionnaireResponseStatusInProgress = "in-progress"
	FhirQuestionnaireResponseStatusCompleted  = "completed"
)

// FhirSUSQuestionnaireID is the logical id of the only instrument this service administers.
const FhirSUSQuestionnaireID = "german-sus-form"

const (
	FhirReferenceFormat = "%s/%s"
	FhirAuthoredLayout  = "2006-01-02T15:04:05.000Z07:00"
)
