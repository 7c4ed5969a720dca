package constvars

const (
	LoggingRequestIDKey               = "request_id"
	LoggingSessionIDKey               = "session_id"
	LoggingPatientIDKey               = "patient_id"
	LoggingQuestionnaireIDKey         = "questionnaire_id"
	LoggingQuestionnaireResponseIDKey = "questionnaire_response_id"
	LoggingLinkIDKey                  = "link_id"
	LoggingAnswerValueKey             = "answer_value"
	LoggingAnsweredCountKey           = "answered_count"
	LoggingScoreKey                   = "score"
	LoggingStatusCodeKey              = "status_code"
	LoggingAttemptKey                 = "attempt"
	LoggingQueueKey                   = "queue"
)

const (
	LoggingMethodKey   = "method"
	LoggingEndpointKey = "endpoint"
	LoggingDurationKey = "duration"
	LoggingSuccessKey  = "success"
)

const (
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
)
