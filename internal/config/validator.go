package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded values and joins every problem into one error
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if !oneOf(c.StorageDriver, StorageDriverPostgres, StorageDriverMemory) {
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, c.StorageDriver))
	}
	if !oneOf(c.LockBackend, LockBackendMemory, LockBackendRedis) {
		errs = append(errs, fmt.Errorf("LOCK_BACKEND must be %q or %q, got %q", LockBackendMemory, LockBackendRedis, c.LockBackend))
	}
	if !oneOf(c.LogFormat, LogFormatText, LogFormatJSON) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}
	if c.UpgradeMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("UPGRADE_MAX_RETRIES must not be negative, got %d", c.UpgradeMaxRetries))
	}
	if c.LockBackend == LockBackendRedis && c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR must be set when LOCK_BACKEND=redis"))
	}
	if c.LockBackend == LockBackendRedis && c.LockTTL <= c.LockWait {
		errs = append(errs, fmt.Errorf("LOCK_TTL (%s) must exceed LOCK_WAIT (%s)", c.LockTTL, c.LockWait))
	}

	return errors.Join(errs...)
}

// Warnings lists non-fatal problems worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.StorageDriver == StorageDriverMemory && c.LockBackend == LockBackendRedis {
		warnings = append(warnings, "redis locks with the memory store only coordinate a single process")
	}
	return warnings
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
