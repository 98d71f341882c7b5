package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
	MetadataKeyResult   = "result"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the delay before the first republish; later attempts back off linearly
	RetryInitialDelay = 500 * time.Millisecond

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 3
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed  = "Failed to publish event, initiating async retry"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgEventRetrySucceeded = "Successfully published event after retry"
	LogMsgEventRetryExhausted = "Event retry exhausted, writing to dead-letter"
	LogMsgShutdownTimeout     = "Resilient publisher shutdown timed out"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
