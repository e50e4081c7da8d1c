package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelreg/model-registry-api/internal/app"
	"github.com/modelreg/model-registry-api/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the model registry API server",
	Long: `Start the model registry API server.

MongoDB connection settings are read from the environment:
- mongo_username: MongoDB username (also the API's basic auth username)
- mongo_password: MongoDB password (also the API's basic auth password)
- mongo_host:     MongoDB host, e.g. mongo.internal:27017
- mongo_auth_db:  MongoDB authentication database

An optional configuration file (--config) can override the listen address,
authentication mode, and telemetry settings.`,
	RunE: runServe,
}

// defaultGracefulTimeout is Kubernetes-friendly shutdown time
const defaultGracefulTimeout = 30 * time.Second

func init() {
	serveCmd.Flags().String("address", "", "Address to listen on (default :8000)")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format, optional)")

	err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address"))
	if err != nil {
		slog.Error("Failed to bind address flag", "error", err)
		os.Exit(1)
	}
	err = viper.BindPFlag("config", serveCmd.Flags().Lookup("config"))
	if err != nil {
		slog.Error("Failed to bind config flag", "error", err)
		os.Exit(1)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load and validate configuration
	var loadOpts []config.Option
	if configPath := viper.GetString("config"); configPath != "" {
		loadOpts = append(loadOpts, config.WithConfigPath(configPath))
	}
	cfg, err := config.LoadConfig(loadOpts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flag takes precedence over config file and default
	address := viper.GetString("address")
	if address == "" {
		address = cfg.GetAddress()
	}

	slog.Info("Starting model registry API server", "address", address)

	registryApp, err := app.NewRegistryApp(ctx,
		app.WithConfig(cfg),
		app.WithAddress(address),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- registryApp.Start()
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		slog.Info("Received signal, shutting down", "signal", sig.String())
	}

	if err := registryApp.Stop(defaultGracefulTimeout); err != nil {
		return err
	}

	return <-errCh
}
