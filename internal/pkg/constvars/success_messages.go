package constvars

const (
	ResponseUnknown = "unknown"

	FindPatientsSuccessMessage      = "patients retrieved successfully"
	FindQuestionnaireSuccessMessage = "questionnaire retrieved successfully"
	StartFormSessionSuccessMessage  = "form session started successfully"
	FindFormSessionSuccessMessage   = "form session retrieved successfully"
	SetAnswerSuccessMessage         = "answer saved successfully"
	CalculateScoreSuccessMessage    = "SUS score calculated successfully"
	SubmitFormSessionSuccessMessage = "questionnaire response submitted successfully"
	ServiceHealthySuccessMessage    = "service is healthy"
	ServiceReadySuccessMessage      = "service is ready"
	ServiceNotReadyMessage          = "waiting for the clinical data server"
)
