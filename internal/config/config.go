// Package config provides configuration loading and management for the model registry server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modelreg/model-registry-api/internal/telemetry"
)

// EnvPrefix is the environment variable prefix for application-level settings
const EnvPrefix = "MODEL_REGISTRY"

// Environment variables consumed for MongoDB credentials. These names are part
// of the deployment contract and are intentionally lowercase.
const (
	EnvMongoUsername = "mongo_username"
	EnvMongoPassword = "mongo_password"
	EnvMongoHost     = "mongo_host"
	EnvMongoAuthDB   = "mongo_auth_db"
)

// Authentication modes supported by the server
const (
	// AuthModeBasic authenticates requests with HTTP Basic credentials
	// matching the configured MongoDB username and password
	AuthModeBasic = "basic"

	// AuthModeAnonymous disables authentication (development only)
	AuthModeAnonymous = "anonymous"
)

// Option defines the interface for configuration loader options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Address is the HTTP listen address, defaults to ":8000"
	Address string `yaml:"address,omitempty"`

	// Mongo holds MongoDB connection settings
	Mongo *MongoConfig `yaml:"mongo,omitempty"`

	// Auth holds authentication settings
	Auth *AuthConfig `yaml:"auth,omitempty"`

	// Telemetry holds OpenTelemetry settings
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// MongoConfig defines MongoDB connection settings. Every field can be
// supplied (and is overridden) by the corresponding environment variable:
// mongo_host, mongo_username, mongo_password, mongo_auth_db.
type MongoConfig struct {
	// Host is the MongoDB hostname or host:port
	Host string `yaml:"host,omitempty"`

	// Username is the MongoDB username
	Username string `yaml:"username,omitempty"`

	// PasswordFile is the path to a file containing the MongoDB password.
	// This is the recommended approach for production deployments and takes
	// priority over the mongo_password environment variable.
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// AuthDatabase is the database used for authentication (authSource)
	AuthDatabase string `yaml:"authDatabase,omitempty"`
}

// AuthConfig defines authentication settings for the HTTP API
type AuthConfig struct {
	// Mode is the authentication mode: "basic" (default) or "anonymous"
	Mode string `yaml:"mode,omitempty"`

	// Realm is the HTTP Basic protection space identifier
	Realm string `yaml:"realm,omitempty"`

	// PublicPaths are additional paths that bypass authentication
	PublicPaths []string `yaml:"publicPaths,omitempty"`
}

// GetHost returns the MongoDB host, preferring the environment variable
func (m *MongoConfig) GetHost() string {
	if env := os.Getenv(EnvMongoHost); env != "" {
		return env
	}
	return m.Host
}

// GetUsername returns the MongoDB username, preferring the environment variable
func (m *MongoConfig) GetUsername() string {
	if env := os.Getenv(EnvMongoUsername); env != "" {
		return env
	}
	return m.Username
}

// GetAuthDatabase returns the authentication database, preferring the environment variable
func (m *MongoConfig) GetAuthDatabase() string {
	if env := os.Getenv(EnvMongoAuthDB); env != "" {
		return env
	}
	return m.AuthDatabase
}

// GetPassword returns the MongoDB password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from the mongo_password environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (m *MongoConfig) GetPassword() (string, error) {
	// Priority 1: Read from file if specified
	if m.PasswordFile != "" {
		// Use filepath.Clean to prevent path traversal attacks
		cleanPath := filepath.Clean(m.PasswordFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", m.PasswordFile, err)
		}

		// Trim whitespace (including newlines) from file content
		password := strings.TrimSpace(string(data))
		return password, nil
	}

	// Priority 2: Check environment variable
	if envPassword := os.Getenv(EnvMongoPassword); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no MongoDB password configured: set passwordFile or the %s environment variable",
		EnvMongoPassword,
	)
}

// LoadConfig loads and parses configuration. Without options it builds a
// configuration entirely from environment variables; with WithConfigPath it
// parses the YAML file first and lets the environment override it.
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	config := &Config{}

	if loaderCfg.path != "" {
		// Read the entire file into memory
		data, err := os.ReadFile(loaderCfg.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML content
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if config.Mongo == nil {
		config.Mongo = &MongoConfig{}
	}

	// Validate the config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetAddress returns the listen address, using ":8000" if not specified
func (c *Config) GetAddress() string {
	if c.Address == "" {
		return ":8000"
	}
	return c.Address
}

// GetAuthMode returns the authentication mode, using "basic" if not specified
func (c *Config) GetAuthMode() string {
	if c.Auth == nil || c.Auth.Mode == "" {
		return AuthModeBasic
	}
	return c.Auth.Mode
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if c.Mongo == nil {
		return fmt.Errorf("mongo configuration is required")
	}

	if c.Mongo.GetHost() == "" {
		return fmt.Errorf("mongo host is required: set mongo.host or the %s environment variable", EnvMongoHost)
	}
	if c.Mongo.GetUsername() == "" {
		return fmt.Errorf("mongo username is required: set mongo.username or the %s environment variable", EnvMongoUsername)
	}
	if c.Mongo.GetAuthDatabase() == "" {
		return fmt.Errorf("mongo auth database is required: set mongo.authDatabase or the %s environment variable", EnvMongoAuthDB)
	}

	if c.Auth != nil {
		switch c.Auth.Mode {
		case "", AuthModeBasic, AuthModeAnonymous:
		default:
			return fmt.Errorf("unsupported auth mode: %s", c.Auth.Mode)
		}
	}

	if c.Telemetry != nil {
		if err := c.Telemetry.Validate(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}

	return nil
}
