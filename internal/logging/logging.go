// Package logging configures the shared structured logger used by the
// ficture binaries.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// InitLogger initializes the global logger with configuration from
// environment variables.
func InitLogger() {
	Logger = log.New(os.Stderr)

	Logger.SetLevel(logLevelFromEnv())
	Logger.SetReportTimestamp(true)
}

// logLevelFromEnv reads the log level from the LOG_LEVEL environment
// variable, defaulting to info.
func logLevelFromEnv() log.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// GetLogger returns the global logger instance.
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields.
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithRunID creates a logger with run_id context, correlating all log
// lines of a single generation run.
func WithRunID(runID string) *log.Logger {
	return WithFields("run_id", runID)
}

// WithMapSize creates a logger with map dimension context.
func WithMapSize(width, height int) *log.Logger {
	return WithFields("width", width, "height", height)
}
