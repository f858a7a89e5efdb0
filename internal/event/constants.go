package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelaySeconds is the initial retry delay in seconds (2s)
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed  = "Failed to publish event, initiating async retry"
	LogMsgEventRetryExhausted = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgEventRetrySucceeded = "Successfully published event after retry"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Formula: initialDelay * 2^(attempt-1), giving 2s, 4s, 8s, 16s, 32s.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
