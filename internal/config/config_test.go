package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
address: ":9000"
mongo:
  host: mongo.example.com:27017
  username: registry
  authDatabase: admin
auth:
  mode: basic
  realm: model-registry
`)

	cfg, err := LoadConfig(WithConfigPath(path))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.GetAddress())
	assert.Equal(t, "mongo.example.com:27017", cfg.Mongo.GetHost())
	assert.Equal(t, "registry", cfg.Mongo.GetUsername())
	assert.Equal(t, "admin", cfg.Mongo.GetAuthDatabase())
	assert.Equal(t, AuthModeBasic, cfg.GetAuthMode())
}

func TestLoadConfigFromEnvironmentOnly(t *testing.T) {
	t.Setenv(EnvMongoHost, "db.internal")
	t.Setenv(EnvMongoUsername, "admin")
	t.Setenv(EnvMongoPassword, "s3cret")
	t.Setenv(EnvMongoAuthDB, "admin")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.GetAddress())
	assert.Equal(t, "db.internal", cfg.Mongo.GetHost())
	assert.Equal(t, "admin", cfg.Mongo.GetUsername())

	password, err := cfg.Mongo.GetPassword()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
mongo:
  host: from-file
  username: file-user
  authDatabase: file-db
`)
	t.Setenv(EnvMongoHost, "from-env")
	t.Setenv(EnvMongoUsername, "env-user")

	cfg, err := LoadConfig(WithConfigPath(path))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Mongo.GetHost())
	assert.Equal(t, "env-user", cfg.Mongo.GetUsername())
	// Not set in environment, file value survives
	assert.Equal(t, "file-db", cfg.Mongo.GetAuthDatabase())
}

func TestGetPasswordFileTakesPriority(t *testing.T) {
	passwordPath := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(passwordPath, []byte("  from-file\n"), 0o600))

	t.Setenv(EnvMongoPassword, "from-env")

	m := &MongoConfig{PasswordFile: passwordPath}
	password, err := m.GetPassword()
	require.NoError(t, err)
	assert.Equal(t, "from-file", password)
}

func TestGetPasswordMissing(t *testing.T) {
	m := &MongoConfig{}
	_, err := m.GetPassword()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMongoPassword)
}

func TestGetPasswordUnreadableFile(t *testing.T) {
	m := &MongoConfig{PasswordFile: filepath.Join(t.TempDir(), "missing")}
	_, err := m.GetPassword()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name:    "missing mongo section",
			cfg:     &Config{},
			wantErr: "mongo configuration is required",
		},
		{
			name:    "missing host",
			cfg:     &Config{Mongo: &MongoConfig{Username: "u", AuthDatabase: "admin"}},
			wantErr: "mongo host is required",
		},
		{
			name:    "missing username",
			cfg:     &Config{Mongo: &MongoConfig{Host: "h", AuthDatabase: "admin"}},
			wantErr: "mongo username is required",
		},
		{
			name:    "missing auth database",
			cfg:     &Config{Mongo: &MongoConfig{Host: "h", Username: "u"}},
			wantErr: "mongo auth database is required",
		},
		{
			name: "unsupported auth mode",
			cfg: &Config{
				Mongo: &MongoConfig{Host: "h", Username: "u", AuthDatabase: "admin"},
				Auth:  &AuthConfig{Mode: "oauth"},
			},
			wantErr: "unsupported auth mode",
		},
		{
			name: "valid",
			cfg: &Config{
				Mongo: &MongoConfig{Host: "h", Username: "u", AuthDatabase: "admin"},
				Auth:  &AuthConfig{Mode: AuthModeAnonymous},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestWithConfigPathRejectsEmptyPath(t *testing.T) {
	_, err := LoadConfig(WithConfigPath(""))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "mongo: [not a mapping")

	_, err := LoadConfig(WithConfigPath(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}
