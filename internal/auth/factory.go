package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelreg/model-registry-api/internal/config"
)

// NewAuthMiddleware creates authentication middleware based on config.
// Basic mode validates requests against the supplied credentials; anonymous
// mode passes every request through and is meant for local development only.
func NewAuthMiddleware(
	cfg *config.AuthConfig,
	creds Credentials,
) (func(http.Handler) http.Handler, error) {
	// Nil config defaults to basic auth, matching the deployed behavior
	mode := config.AuthModeBasic
	realm := ""
	if cfg != nil {
		if cfg.Mode != "" {
			mode = cfg.Mode
		}
		realm = cfg.Realm
	}

	switch mode {
	case config.AuthModeBasic:
		if creds.Username == "" {
			return nil, fmt.Errorf("basic auth requires a username")
		}
		slog.Info("auth: basic mode", "realm", effectiveRealm(realm))
		return newBasicAuthMiddleware(creds, realm).Middleware, nil
	case config.AuthModeAnonymous:
		slog.Warn("auth: anonymous mode, all requests are unauthenticated")
		return anonymousMiddleware, nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", mode)
	}
}

func effectiveRealm(realm string) string {
	if realm == "" {
		return defaultRealm
	}
	return realm
}

// anonymousMiddleware is a no-op middleware that passes requests through without authentication.
func anonymousMiddleware(next http.Handler) http.Handler {
	return next
}
