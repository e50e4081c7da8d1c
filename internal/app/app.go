// Package app provides application lifecycle management for the model registry server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/modelreg/model-registry-api/internal/config"
	"github.com/modelreg/model-registry-api/internal/db"
	"github.com/modelreg/model-registry-api/internal/telemetry"
)

// RegistryApp encapsulates all components needed to run the model registry API server.
// It provides lifecycle management and graceful shutdown capabilities.
type RegistryApp struct {
	config     *config.Config
	httpServer *http.Server
	connection *db.Connection
	monitor    *db.HealthMonitor
	telemetry  *telemetry.Telemetry

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Start starts the application components (HTTP server and background health monitor).
// This method blocks until the HTTP server stops or a component encounters an error.
func (app *RegistryApp) Start() error {
	g, ctx := errgroup.WithContext(app.ctx)

	if app.monitor != nil {
		g.Go(func() error {
			if err := app.monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("health monitor failed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		slog.Info("Server listening", "address", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Stop gracefully stops the application with the given timeout.
// It stops the health monitor, shuts down the HTTP server, closes the
// mongo connection, and flushes telemetry.
func (app *RegistryApp) Stop(timeout time.Duration) error {
	slog.Info("Shutting down server...")

	// Cancel the application context to stop the health monitor
	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Graceful HTTP server shutdown
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if app.connection != nil {
		if err := app.connection.Close(shutdownCtx); err != nil {
			slog.Error("Failed to close mongo connection", "error", err)
		}
	}

	if app.telemetry != nil {
		if err := app.telemetry.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down telemetry", "error", err)
		}
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (app *RegistryApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *RegistryApp) GetHTTPServer() *http.Server {
	return app.httpServer
}
