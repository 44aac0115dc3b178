package main

import (
	"github.com/hupe1980/engineroom/internal/config"
	"github.com/hupe1980/engineroom/logging"
)

// buildLogger constructs the logger described by the roster's log section.
// Without a log file everything is discarded so the terminal stays reserved
// for analysis output. The returned cleanup flushes and closes the file.
func buildLogger(cfg config.LogConfig) (logging.Logger, func()) {
	if cfg.File == "" {
		return logging.NoOpLogger{}, func() {}
	}

	rotation := logging.DefaultRotationConfig(cfg.File)
	if cfg.MaxSizeMB > 0 {
		rotation.MaxSizeMB = cfg.MaxSizeMB
	}
	if cfg.MaxBackups > 0 {
		rotation.MaxBackups = cfg.MaxBackups
	}
	if cfg.MaxAgeDays > 0 {
		rotation.MaxAgeDays = cfg.MaxAgeDays
	}
	writer := logging.NewRotatingWriter(rotation)

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logLevel(cfg.Level),
		Format:    "text",
		Output:    writer,
		Component: "engineroom",
	})
	return logger, func() { _ = writer.Close() }
}

func logLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
