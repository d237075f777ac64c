package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a structured logger writing to w. The level comes from
// STARSHOOTER_LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(LogLevel())
	return logger
}

// LogLevel returns the level configured by STARSHOOTER_LOG_LEVEL.
func LogLevel() log.Level {
	level, err := log.ParseLevel(GetEnv("STARSHOOTER_LOG_LEVEL", "info"))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Seed returns the game seed from STARSHOOTER_SEED; 0 means time-based.
func Seed() int64 {
	return int64(GetEnvInt("STARSHOOTER_SEED", 0))
}
