// Package logging provides the structured logging handler used by the
// Model Registry API server. Logs are emitted as JSON on stderr so that
// stdout stays clean for commands that output data (e.g. version --format json).
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Option is a function that configures the logging handler
type Option func(*handlerConfig)

// handlerConfig holds the configuration for creating a logging handler
type handlerConfig struct {
	level  slog.Level
	writer io.Writer
}

// WithLevel sets the minimum level for emitted log records
func WithLevel(level slog.Level) Option {
	return func(cfg *handlerConfig) {
		cfg.level = level
	}
}

// WithWriter sets the destination for log output (primarily for testing)
func WithWriter(w io.Writer) Option {
	return func(cfg *handlerConfig) {
		cfg.writer = w
	}
}

// NewHandler creates a JSON slog handler with the given options.
func NewHandler(opts ...Option) slog.Handler {
	cfg := &handlerConfig{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
		Level: cfg.level,
	})
}
