package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "player.registered")
const (
	// EventTypePlayerRegistered is published when a new player and their starter kit are created
	EventTypePlayerRegistered = "player.registered"

	// EventTypeUpgradeAttempted is published after every committed upgrade attempt,
	// whatever its outcome
	EventTypeUpgradeAttempted = "forge.upgrade_attempted"
)
