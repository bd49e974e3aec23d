// Package debuglog provides an optional file-backed logger for tracing
// state transitions while the terminal is owned by the TUI.
//
// Logging is off unless MENTORDESK_DEBUG is set. Set it to "1" to log to
// mentordesk.log in the temp directory, or to a path to log there.
package debuglog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a logger according to MENTORDESK_DEBUG, or a no-op logger
// when debugging is disabled or the log file can't be opened.
func New() *zap.Logger {
	target := os.Getenv("MENTORDESK_DEBUG")
	if target == "" {
		return zap.NewNop()
	}
	if target == "1" || target == "true" {
		target = filepath.Join(os.TempDir(), "mentordesk.log")
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{target}
	cfg.ErrorOutputPaths = []string{target}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
