package forge

import "time"

// Chance table tiers
const (
	// GuaranteedUpTo is the highest target level that always succeeds
	GuaranteedUpTo = 5

	// MidTierStart..MidTierUpTo step down by 0.05 from 0.85
	MidTierStart = 6
	MidTierUpTo  = 10

	// ChanceTableMaxLevel is the last level with a non-zero chance
	ChanceTableMaxLevel = 15
)

// Literal tables so the published odds are exact decimals
var midTierChances = [...]float64{0.85, 0.80, 0.75, 0.70, 0.65}

// highTierChances covers target levels 11..15
var highTierChances = [...]float64{0.30, 0.25, 0.20, 0.15, 0.10}

// Retry policy for conflicting writes
const (
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 10 * time.Millisecond
	DefaultLockWait     = 3 * time.Second
)

// Log messages
const (
	LogMsgUpgradeCalled      = "UpgradeWeapon called"
	LogMsgUpgradeResolved    = "Upgrade resolved"
	LogMsgWriteConflictRetry = "Write conflict on upgrade, retrying"
	LogMsgRetriesExhausted   = "Upgrade retries exhausted"
	LogMsgSigilConsumed      = "Sigil consumed to prevent downgrade"
	LogMsgShuttingDown       = "Shutting down forge service"
	LogMsgShutdownDone       = "Forge service shutdown complete"
	LogMsgShutdownForced     = "Forge service shutdown timed out with upgrades in flight"
)

// Error messages
const (
	ErrMsgAcquireLockFailed = "failed to acquire player lock: %w"
	ErrMsgBeginTxFailed     = "failed to begin transaction: %w"
	ErrMsgLoadStateFailed   = "failed to load upgrade state: %w"
	ErrMsgSaveStateFailed   = "failed to save upgrade state: %w"
	ErrMsgCommitFailed      = "failed to commit transaction: %w"
)
