package config

import "time"

const (
	// ConfigPathUpgradeRules is the default upgrade rules file
	ConfigPathUpgradeRules = "configs/upgrade.yaml"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "info"
	DefaultLogDir      = "logs"
	DefaultDBName      = "sigilforge"
	DefaultRedisAddr   = "localhost:6379"

	DefaultDBMaxConns    = 20
	DefaultDBMaxIdle     = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute

	DefaultLockTTL           = 5 * time.Second
	DefaultLockWait          = 3 * time.Second
	DefaultUpgradeMaxRetries = 3
	DefaultUpgradeRetryDelay = 10 * time.Millisecond

	DefaultPlayerCacheSize = 1024
	DefaultPlayerCacheTTL  = 30 * time.Second

	DefaultDeadLetterPath = "logs/deadletter.jsonl"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Lock backends
const (
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Example values shipped in .env.example that must never reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
