// Package main is the entry point for the Model Registry API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/modelreg/model-registry-api/cmd/model-registry-api/app"
	"github.com/modelreg/model-registry-api/internal/config"
	"github.com/modelreg/model-registry-api/internal/logging"
)

// getLogLevel parses the MODEL_REGISTRY_LOG_LEVEL environment variable and returns
// the corresponding slog.Level. Falls back to LOG_LEVEL for convenience.
// Defaults to slog.LevelInfo if neither is set or if the value is invalid.
func getLogLevel() slog.Level {
	// Create a Viper instance for application-level config
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try MODEL_REGISTRY_LOG_LEVEL first (via Viper with MODEL_REGISTRY prefix)
	levelStr := v.GetString("LOG_LEVEL")

	// Fall back to LOG_LEVEL without prefix
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return slog.LevelInfo
	}
}

// traceHandler wraps an slog.Handler to automatically inject OpenTelemetry
// trace_id and span_id into every log record, enabling log-trace correlation.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

func main() {
	// Setup structured JSON logging.
	// Use stderr to keep stdout clean for commands that output data (e.g., version --format json).
	baseHandler := logging.NewHandler(logging.WithLevel(getLogLevel()))
	handler := &traceHandler{Handler: baseHandler}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
