package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgWeaponNotFoundError    = "Weapon not found"
	ErrMsgInventoryNotFoundError = "Inventory not found"
	ErrMsgAlreadyRegisteredError = "Player already registered"
	ErrMsgUnsupportedItemError   = "Only weapons can be upgraded"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgUpgradeBusyError       = "The forge is busy. Please try again."
	ErrMsgUnavailableError       = "Server is temporarily unavailable. Please try again later."
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgDependencyFailedFmt  = "%s check failed"
)

// Log messages
const (
	LogMsgDecodeFailedFmt = "Failed to decode %s request"
	LogMsgDecodedFmt      = "%s request decoded"
	LogMsgServiceError    = "Service error"
	LogMsgUpgradeHandled  = "Upgrade handled"
	LogMsgPlayerCreated   = "Player registered"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
