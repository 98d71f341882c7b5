package bootstrap

import "time"

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the number of background retries for a failed publish
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the base delay between retries (linear backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// DirPermission is used for the log and dead-letter directories
	DirPermission = 0o755
)

// =============================================================================
// Startup
// =============================================================================

const (
	// StartupPingTimeout bounds the first round-trip to each backing store
	StartupPingTimeout = 5 * time.Second

	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second
)

// Readiness check names
const (
	CheckNamePostgres = "postgres"
	CheckNameRedis    = "redis"
)

// Log messages
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgStartingSigilForge     = "Starting SigilForge"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgConfigWarning          = "Configuration warning"
	LogMsgRulesLoaded            = "Upgrade rules loaded"
	LogMsgStorageInitialized     = "Storage initialized"
	LogMsgMigrationsApplied      = "Database migrations applied"
	LogMsgLockerInitialized      = "Player locker initialized"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgMetricsRegistered      = "Metrics collector registered"
	LogMsgPlayerCacheRegistered  = "Player cache invalidation registered"
)

// Error messages
const (
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgFailedOpenDeadLetter      = "failed to open dead-letter file"
	ErrMsgFailedRegisterMetrics     = "failed to register metrics collector"
	ErrMsgFailedConnectDatabase     = "failed to connect to database"
	ErrMsgFailedMigrate             = "failed to run migrations"
	ErrMsgFailedConnectRedis        = "failed to connect to redis"
	ErrMsgFailedLoadRules           = "failed to load upgrade rules"
	ErrMsgFailedCreateLogFile       = "failed to create log file"
	ErrMsgUnknownStorageDriver      = "unknown storage driver"
	ErrMsgUnknownLockBackend        = "unknown lock backend"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCloseFailed                = "Failed to close resource"

	ServiceNameForge = "forge"

	// LogMsgServiceShutdownFailed is appended to the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
