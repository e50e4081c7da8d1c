package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/modelreg/model-registry-api/internal/api"
	"github.com/modelreg/model-registry-api/internal/auth"
	"github.com/modelreg/model-registry-api/internal/config"
	"github.com/modelreg/model-registry-api/internal/db"
	"github.com/modelreg/model-registry-api/internal/service"
	mongodb "github.com/modelreg/model-registry-api/internal/service/mongo"
	"github.com/modelreg/model-registry-api/internal/telemetry"
)

const (
	defaultHTTPAddress       = ":8000"
	defaultRequestTimeout    = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

// defaultPublicPaths are paths that never require authentication
var defaultPublicPaths = []string{"/health", "/readiness", "/version", "/openapi.yaml", "/metrics"}

// transferPaths carry model file content. Their duration is bounded by the
// payload size, not by a wall-clock budget, so the request timeout and the
// server write timeout must not apply to them.
var transferPaths = []string{"/store_model", "/upload_model", "/download_model"}

// RegistryAppOptions is a function that configures the registry app builder
type RegistryAppOptions func(*registryAppConfig) error

// registryAppConfig builds a RegistryApp using the builder pattern.
// It supports dependency injection for testing while providing sensible defaults for production.
type registryAppConfig struct {
	config *config.Config

	// Optional component overrides (primarily for testing)
	connection      *db.Connection
	registryService service.RegistryService
	authMiddleware  func(http.Handler) http.Handler
	telemetry       *telemetry.Telemetry

	// HTTP server options
	address           string
	middlewares       []func(http.Handler) http.Handler
	requestTimeout    time.Duration
	readHeaderTimeout time.Duration
	idleTimeout       time.Duration
}

func baseConfig(opts ...RegistryAppOptions) (*registryAppConfig, error) {
	cfg := &registryAppConfig{
		address:           defaultHTTPAddress,
		requestTimeout:    defaultRequestTimeout,
		readHeaderTimeout: defaultReadHeaderTimeout,
		idleTimeout:       defaultIdleTimeout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewRegistryApp creates a new builder with the given configuration
func NewRegistryApp(
	ctx context.Context,
	opts ...RegistryAppOptions,
) (*RegistryApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	if cfg.config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	// Build telemetry (if not injected)
	if cfg.telemetry == nil {
		cfg.telemetry, err = telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.config.Telemetry))
		if err != nil {
			return nil, fmt.Errorf("failed to build telemetry: %w", err)
		}
	}

	// Ensure cleanup happens on error
	var cleanupNeeded = true
	defer func() {
		if cleanupNeeded {
			cleanup(ctx, cfg)
		}
	}()

	// Build database connection and health monitor
	monitor, err := buildStorageComponents(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage components: %w", err)
	}

	// Build service components
	registryService, err := buildServiceComponents(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	// Build auth middleware (if not injected)
	if cfg.authMiddleware == nil {
		cfg.authMiddleware, err = buildAuthMiddleware(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build auth middleware: %w", err)
		}
	}

	// Build HTTP server
	httpServer, err := buildHTTPServer(cfg, registryService)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	// Create application context
	appCtx, cancel := context.WithCancel(ctx)

	// Cleanup is now handled by the app, not in defer
	cleanupNeeded = false

	return &RegistryApp{
		config:     cfg.config,
		httpServer: httpServer,
		connection: cfg.connection,
		monitor:    monitor,
		telemetry:  cfg.telemetry,
		ctx:        appCtx,
		cancelFunc: cancel,
	}, nil
}

func cleanup(ctx context.Context, cfg *registryAppConfig) {
	if cfg.connection != nil {
		if err := cfg.connection.Close(ctx); err != nil {
			slog.Error("Failed to close mongo connection during cleanup", "error", err)
		}
	}
	if cfg.telemetry != nil {
		if err := cfg.telemetry.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down telemetry during cleanup", "error", err)
		}
	}
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		parts := strings.SplitN(addr, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("address is not a valid host:port: %s", addr)
		}
		host := parts[0]
		port := parts[1]

		if port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares sets custom HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithConnection allows injecting an established mongo connection (for testing)
func WithConnection(conn *db.Connection) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.connection = conn
		return nil
	}
}

// WithRegistryService allows injecting a custom registry service (for testing)
func WithRegistryService(svc service.RegistryService) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.registryService = svc
		return nil
	}
}

// WithAuthMiddleware allows injecting a custom auth middleware (for testing)
func WithAuthMiddleware(mw func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.authMiddleware = mw
		return nil
	}
}

// WithTelemetry allows injecting a configured telemetry instance
func WithTelemetry(tel *telemetry.Telemetry) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.telemetry = tel
		return nil
	}
}

// buildStorageComponents connects to MongoDB and prepares the health monitor.
// The connection step is skipped entirely when a service override is injected.
func buildStorageComponents(ctx context.Context, cfg *registryAppConfig) (*db.HealthMonitor, error) {
	if cfg.registryService != nil && cfg.connection == nil {
		return nil, nil
	}

	if cfg.connection == nil {
		slog.Info("Initializing mongo connection")
		conn, err := db.NewConnection(ctx, cfg.config.Mongo)
		if err != nil {
			return nil, err
		}
		cfg.connection = conn
	}

	healthMetrics, err := telemetry.NewHealthMetrics(cfg.telemetry.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create health metrics: %w", err)
	}

	return db.NewHealthMonitor(cfg.connection, healthMetrics), nil
}

// buildServiceComponents builds the registry service
func buildServiceComponents(cfg *registryAppConfig) (service.RegistryService, error) {
	if cfg.registryService != nil {
		return cfg.registryService, nil
	}

	slog.Info("Initializing service components")

	storageMetrics, err := telemetry.NewStorageMetrics(cfg.telemetry.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create storage metrics: %w", err)
	}

	svc, err := mongodb.New(
		mongodb.WithClient(cfg.connection.Client()),
		mongodb.WithTracer(cfg.telemetry.Tracer(mongodb.ServiceTracerName)),
		mongodb.WithStorageMetrics(storageMetrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildAuthMiddleware wires basic auth against the configured mongo credentials
func buildAuthMiddleware(cfg *registryAppConfig) (func(http.Handler) http.Handler, error) {
	creds := auth.Credentials{}
	if cfg.config.Mongo != nil {
		password, err := cfg.config.Mongo.GetPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to read mongo password: %w", err)
		}
		creds.Username = cfg.config.Mongo.GetUsername()
		creds.Password = password
	}

	return auth.NewAuthMiddleware(cfg.config.Auth, creds)
}

// buildHTTPServer builds the HTTP server with router and middleware
func buildHTTPServer(
	cfg *registryAppConfig,
	svc service.RegistryService,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	// Use default middlewares if not provided
	if cfg.middlewares == nil {
		cfg.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			timeoutExceptTransfers(cfg.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Add metrics middleware if a meter provider is configured
	// This should be added early in the chain to capture all requests
	if cfg.telemetry.MeterProvider() != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(cfg.telemetry.MeterProvider())
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		if metricsMiddleware != nil {
			// Prepend metrics middleware to capture all requests including those rejected by auth
			cfg.middlewares = append([]func(http.Handler) http.Handler{metricsMiddleware}, cfg.middlewares...)
			slog.Info("HTTP metrics middleware enabled")
		}
	}

	if cfg.telemetry.TracerProvider() != nil {
		tracingMiddleware := telemetry.TracingMiddleware(cfg.telemetry.TracerProvider())
		cfg.middlewares = append([]func(http.Handler) http.Handler{tracingMiddleware}, cfg.middlewares...)
	}

	// Create auth middleware that bypasses public paths
	publicPaths := defaultPublicPaths
	if cfg.config.Auth != nil && len(cfg.config.Auth.PublicPaths) > 0 {
		publicPaths = append(publicPaths, cfg.config.Auth.PublicPaths...)
	}
	authMw := auth.WrapWithPublicPaths(cfg.authMiddleware, publicPaths)
	cfg.middlewares = append(cfg.middlewares, authMw)

	serverOpts := []api.ServerOption{
		api.WithMiddlewares(cfg.middlewares...),
		api.WithMetricsHandler(cfg.telemetry.MetricsHandler()),
	}

	// Create router with middlewares
	router := api.NewServer(svc, serverOpts...)

	// Create HTTP server. Only the header read is bounded: read and write
	// timeouts are left unset so model uploads and downloads can run for
	// as long as the transfer takes.
	server := &http.Server{
		Addr:              cfg.address,
		Handler:           router,
		ReadHeaderTimeout: cfg.readHeaderTimeout,
		IdleTimeout:       cfg.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", cfg.address)
	return server, nil
}

// timeoutExceptTransfers applies the request timeout to every route except
// the model transfer paths, which stream payloads of arbitrary size.
func timeoutExceptTransfers(timeout time.Duration) func(http.Handler) http.Handler {
	timed := middleware.Timeout(timeout)
	return func(next http.Handler) http.Handler {
		timedNext := timed(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.IsPublicPath(r.URL.Path, transferPaths) {
				next.ServeHTTP(w, r)
				return
			}
			timedNext.ServeHTTP(w, r)
		})
	}
}
