package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound          = "not found"
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgWeaponNotFound    = "weapon not found"
	ErrMsgInventoryNotFound = "inventory not found"

	// Registration errors
	ErrMsgPlayerAlreadyExists = "player already registered"

	// Upgrade errors
	ErrMsgUnsupportedItemType     = "unsupported item type"
	ErrMsgConcurrentWriteConflict = "concurrent write conflict"
	ErrMsgUpgradeBusy             = "upgrade busy, try again"
	ErrMsgLockTimeout             = "timed out waiting for player lock"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgTxClosed = "tx is closed"

	// Lifecycle errors
	ErrMsgServiceShuttingDown = "service is shutting down"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is the parent of every missing-record error
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrPlayerNotFound    = &notFoundError{msg: ErrMsgPlayerNotFound}
	ErrWeaponNotFound    = &notFoundError{msg: ErrMsgWeaponNotFound}
	ErrInventoryNotFound = &notFoundError{msg: ErrMsgInventoryNotFound}

	ErrPlayerAlreadyExists = errors.New(ErrMsgPlayerAlreadyExists)

	ErrUnsupportedItemType     = errors.New(ErrMsgUnsupportedItemType)
	ErrConcurrentWriteConflict = errors.New(ErrMsgConcurrentWriteConflict)
	ErrUpgradeBusy             = errors.New(ErrMsgUpgradeBusy)
	ErrLockTimeout             = errors.New(ErrMsgLockTimeout)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrServiceShuttingDown = errors.New(ErrMsgServiceShuttingDown)

	// ErrTxClosed is returned by a Tx used after Commit or Rollback
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)

// notFoundError lets the specific lookup errors match ErrNotFound with errors.Is
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
