package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientFHIRServerUnavailable         = "the clinical data server is not reachable right now"
	ErrClientFormSessionNotFound           = "the form session does not exist or has expired"
	ErrClientSUSScoreNotReady              = "please answer every question before requesting a score"
	ErrClientSUSInvalidAnswer              = "the answer is not valid for this questionnaire"
	ErrClientSUSInvalidQuestionnaire       = "the questionnaire is not a valid SUS instrument"
	ErrClientFormSessionBusy               = "the form session is being updated, please try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadBody               = "failed to read response body"
	ErrDevURLParamValidation     = "URL param %s validation failed"

	// Spark messages
	ErrDevSparkGetFHIRResource    = "failed to get FHIR %s from firely spark"
	ErrDevSparkCreateFHIRResource = "failed to create FHIR %s in firely spark"
	ErrDevSparkDecodeFHIRResponse = "failed to decode FHIR %s response from firely spark"

	// SUS messages
	ErrDevSUSScoreNotReady        = "SUS score requested before every question was answered"
	ErrDevSUSInvalidAnswer        = "SUS answer rejected"
	ErrDevSUSInvalidQuestionnaire = "questionnaire cannot be used as SUS instrument"
	ErrDevFormSessionNotFound     = "form session %s not found"
	ErrDevFormSessionBusy         = "form session %s is locked by another request"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
)
