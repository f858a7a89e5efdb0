package session

// MaxPlannedDurationSeconds caps the planned duration a client may request
// (24 hours). The cap bounds bad input, not the actual session length, which
// is whatever the clock says at completion.
const MaxPlannedDurationSeconds = 24 * 60 * 60

// Log messages
const (
	LogMsgSessionStarted    = "Session started"
	LogMsgSessionCompleted  = "Session completed"
	LogMsgSessionCancelled  = "Session cancelled"
	LogMsgCompletionReplay  = "Completion replayed on terminal session"
	LogMsgEventPublishError = "Event publish failed"
)
