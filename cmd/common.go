package cmd

import (
	"log/slog"
	"os"
)

// ConfigureLogger sets up a structured logger, verbose switching to
// debug level and jsonFormat switching the handler - unchanged from
// idefix/cmd/common.go.
func ConfigureLogger(verbose bool, jsonFormat bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
