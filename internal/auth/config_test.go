package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicPath(t *testing.T) {
	t.Parallel()

	publicPaths := []string{"/health", "/readiness", "/version", "/openapi.yaml", "/metrics"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"exact match health", "/health", true},
		{"exact match version", "/version", true},
		{"subpath of public path", "/health/check", true},
		{"similar prefix not public", "/healthcheck", false},
		{"protected endpoint", "/store_model", false},
		{"protected with trailing slash", "/store_model/", false},
		{"traversal into protected", "/health/../store_model", false},
		{"double slash normalized", "//health", true},
		{"encoded separator rejected", "/health%2f../store_model", false},
		{"encoded dot rejected", "/health/%2e%2e/store_model", false},
		{"root not public", "/", false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsPublicPath(tt.path, publicPaths))
		})
	}
}

func TestIsPublicPathRootMakesEverythingPublic(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPublicPath("/store_model", []string{"/"}))
	assert.True(t, IsPublicPath("/health", []string{"/"}))
}

func TestIsPublicPathNoPublicPaths(t *testing.T) {
	t.Parallel()

	assert.False(t, IsPublicPath("/health", nil))
}
