package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// SetupLogger installs the process logger, writing to stdout and a rotated
// file under cfg.LogDir. The returned closer flushes the file.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	file, err := logger.NewRotatingFile(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogFile, err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	logger.InitLogger(logCfg, file)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "dir", cfg.LogDir)
	slog.Info(LogMsgStartingSigilForge,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.StorageDriver,
		"lock_backend", cfg.LockBackend,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return file, nil
}
