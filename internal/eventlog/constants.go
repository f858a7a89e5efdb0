package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
