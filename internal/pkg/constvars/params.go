package constvars

const (
	URLParamFormSessionID = "session_id"
)
