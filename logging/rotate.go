package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig holds log file rotation settings. A supervisor that tails
// engine wire traffic at debug level produces enough output that unbounded
// log files are a real operational hazard.
type RotationConfig struct {
	Path       string // Log file path
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Number of old files to keep
	MaxAgeDays int    // Max age in days
	Compress   bool   // Compress old files
}

// DefaultRotationConfig returns sensible defaults for log rotation.
func DefaultRotationConfig(path string) RotationConfig {
	return RotationConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// NewRotatingWriter creates a log writer with rotation support. Pass it as
// the Output of a LoggerConfig.
func NewRotatingWriter(cfg RotationConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
