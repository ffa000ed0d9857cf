package main

import (
	"log/slog"
	"os"

	"github.com/tinytelemetry/salesdash/internal/logging"
)

// configureRuntimeLogger sends logs to the configured file because the TUI
// owns the terminal. If the file cannot be opened, logs go to stderr.
func configureRuntimeLogger(cfg cliConfig) (*slog.Logger, func()) {
	w, closeFn, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		logger := logging.New(os.Stderr, cfg.LogLevel, "text")
		logger.Warn("log file unavailable, logging to stderr", "path", cfg.LogFile, "error", err)
		return logger, func() {}
	}
	return logging.New(w, cfg.LogLevel, "text"), closeFn
}
