package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "SUS_SVC_"
)

const (
	RedisFormSessionKeyPrefix = "sus:form_session:"
)

const (
	EventTypeSUSResponseSubmitted = "sus.response.submitted"
)

const (
	RedisFormSessionLockKeyPrefix = "sus:form_session_lock:"
)
