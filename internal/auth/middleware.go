// Package auth provides authentication middleware for the model registry API server.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// defaultRealm is the default protection space identifier
const defaultRealm = "model-registry"

// basicAuthMiddleware validates HTTP Basic credentials against a fixed
// username/password pair.
type basicAuthMiddleware struct {
	usernameHash [32]byte
	passwordHash [32]byte
	realm        string
}

// newBasicAuthMiddleware creates a basic auth middleware for the given credentials.
// Expected values are pre-hashed so the per-request comparison runs over
// fixed-length digests regardless of input length.
func newBasicAuthMiddleware(creds Credentials, realm string) *basicAuthMiddleware {
	if realm == "" {
		realm = defaultRealm
	}
	return &basicAuthMiddleware{
		usernameHash: sha256.Sum256([]byte(creds.Username)),
		passwordHash: sha256.Sum256([]byte(creds.Password)),
		realm:        realm,
	}
}

// Middleware returns the HTTP middleware function
func (m *basicAuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			m.writeUnauthorized(w, r, "")
			return
		}

		givenUsername := sha256.Sum256([]byte(username))
		givenPassword := sha256.Sum256([]byte(password))

		// Both comparisons always run so timing does not reveal
		// which of the two values was wrong.
		usernameMatch := subtle.ConstantTimeCompare(m.usernameHash[:], givenUsername[:]) == 1
		passwordMatch := subtle.ConstantTimeCompare(m.passwordHash[:], givenPassword[:]) == 1

		if !usernameMatch || !passwordMatch {
			m.writeUnauthorized(w, r, username)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *basicAuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request, username string) {
	slog.Warn("Authentication failed",
		"username", username,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
	)

	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", m.realm))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect username or password"}); err != nil {
		slog.Error("Failed to encode unauthorized response", "error", err)
	}
}

// WrapWithPublicPaths wraps an auth middleware to bypass authentication for public paths.
// It checks each request path against the provided list of public paths using IsPublicPath.
// Requests to public paths are passed directly to the next handler without authentication,
// while all other requests go through the provided auth middleware.
func WrapWithPublicPaths(
	authMw func(http.Handler) http.Handler,
	publicPaths []string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		// Pre-wrap the handler once during initialization, not per-request
		authWrappedNext := authMw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsPublicPath(r.URL.Path, publicPaths) {
				authWrappedNext.ServeHTTP(w, r)
			} else {
				next.ServeHTTP(w, r)
			}
		})
	}
}
