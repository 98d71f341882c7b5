package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	Environment string
	Version     string

	LogLevel  string
	LogFormat string
	LogDir    string

	StorageDriver string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxIdle     time.Duration
	DBMaxLifetime time.Duration
	AutoMigrate   bool

	LockBackend   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LockTTL       time.Duration
	LockWait      time.Duration

	UpgradeMaxRetries int
	UpgradeRetryDelay time.Duration
	RulesPath         string

	PlayerCacheSize int
	PlayerCacheTTL  time.Duration

	DeadLetterPath string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", LogFormatText)),
		LogDir:    getEnv("LOG_DIR", DefaultLogDir),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),
		AutoMigrate:   getEnvAsBool("AUTO_MIGRATE", true),

		LockBackend:   strings.ToLower(getEnv("LOCK_BACKEND", LockBackendMemory)),
		RedisAddr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		LockTTL:       getEnvAsDuration("LOCK_TTL", DefaultLockTTL),
		LockWait:      getEnvAsDuration("LOCK_WAIT", DefaultLockWait),

		UpgradeMaxRetries: getEnvAsInt("UPGRADE_MAX_RETRIES", DefaultUpgradeMaxRetries),
		UpgradeRetryDelay: getEnvAsDuration("UPGRADE_RETRY_DELAY", DefaultUpgradeRetryDelay),
		RulesPath:         getEnv("RULES_PATH", ConfigPathUpgradeRules),

		PlayerCacheSize: getEnvAsInt("PLAYER_CACHE_SIZE", DefaultPlayerCacheSize),
		PlayerCacheTTL:  getEnvAsDuration("PLAYER_CACHE_TTL", DefaultPlayerCacheTTL),

		DeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses Go duration syntax ("5s", "250ms")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
