package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelreg/model-registry-api/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	t.Parallel()

	creds := Credentials{Username: "admin", Password: "s3cret"}

	tests := []struct {
		name       string
		username   string
		password   string
		noAuth     bool
		wantStatus int
	}{
		{"valid credentials", "admin", "s3cret", false, http.StatusOK},
		{"wrong password", "admin", "nope", false, http.StatusUnauthorized},
		{"wrong username", "root", "s3cret", false, http.StatusUnauthorized},
		{"both wrong", "root", "nope", false, http.StatusUnauthorized},
		{"missing header", "", "", true, http.StatusUnauthorized},
		{"empty credentials", "", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mw := newBasicAuthMiddleware(creds, "")
			handler := mw.Middleware(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/generate_password", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="model-registry"`, rec.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"error": "Incorrect username or password"}`, rec.Body.String())
			}
		})
	}
}

func TestBasicAuthMiddlewareCustomRealm(t *testing.T) {
	t.Parallel()

	mw := newBasicAuthMiddleware(Credentials{Username: "u", Password: "p"}, "staging")
	handler := mw.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/store_model", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="staging"`, rec.Header().Get("WWW-Authenticate"))
}

func TestNewAuthMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.AuthConfig
		creds   Credentials
		wantErr string
	}{
		{
			name:  "nil config defaults to basic",
			creds: Credentials{Username: "admin", Password: "pw"},
		},
		{
			name:  "explicit basic mode",
			cfg:   &config.AuthConfig{Mode: config.AuthModeBasic},
			creds: Credentials{Username: "admin", Password: "pw"},
		},
		{
			name: "anonymous mode",
			cfg:  &config.AuthConfig{Mode: config.AuthModeAnonymous},
		},
		{
			name:    "basic without username",
			cfg:     &config.AuthConfig{Mode: config.AuthModeBasic},
			wantErr: "basic auth requires a username",
		},
		{
			name:    "unsupported mode",
			cfg:     &config.AuthConfig{Mode: "oauth"},
			creds:   Credentials{Username: "admin", Password: "pw"},
			wantErr: "unsupported auth mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mw, err := NewAuthMiddleware(tt.cfg, tt.creds)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, mw)
		})
	}
}

func TestNewAuthMiddlewareAnonymousPassesThrough(t *testing.T) {
	t.Parallel()

	mw, err := NewAuthMiddleware(&config.AuthConfig{Mode: config.AuthModeAnonymous}, Credentials{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/store_model", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWrapWithPublicPaths(t *testing.T) {
	t.Parallel()

	mw := newBasicAuthMiddleware(Credentials{Username: "admin", Password: "pw"}, "")
	wrapped := WrapWithPublicPaths(mw.Middleware, []string{"/health", "/version"})
	handler := wrapped(okHandler())

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"public path bypasses auth", "/health", http.StatusOK},
		{"public subpath bypasses auth", "/health/live", http.StatusOK},
		{"protected path requires auth", "/store_model", http.StatusUnauthorized},
		{"similar prefix requires auth", "/versions", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
