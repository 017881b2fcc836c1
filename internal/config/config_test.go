// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sponsors")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("IDENTITY_JWKS_URL", "https://id.example.com/auth/v1/.well-known/jwks.json")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	setRequiredEnv(t)

	c, err := load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 10*time.Minute, c.Views.CacheTTL)
	assert.Equal(t, 100, c.RateLimit.Requests)
	assert.Equal(t, 30, c.RateLimit.ActionRequests)
	assert.Equal(t, "sb-access-token", c.Identity.CookieName)
	assert.False(t, c.Storage.Enabled)
	assert.False(t, c.IsProduction())
}

func TestLoadFileThenEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_ACTION_REQUESTS", "12")
	t.Setenv("VIEWS_CACHE_TTL", "90s")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
app:
  environment: production
server:
  port: 9090
storage:
  enabled: true
  bucket: sponsor-docs
rate_limit:
  action_requests: 5
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	c, err := load(path)
	require.NoError(t, err)

	assert.True(t, c.IsProduction())
	assert.Equal(t, "0.0.0.0:9090", c.Server.Address())
	assert.Equal(t, "sponsor-docs", c.Storage.Bucket)
	assert.Equal(t, 12, c.RateLimit.ActionRequests)
	assert.Equal(t, 90*time.Second, c.Views.CacheTTL)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing identity keys",
			env:  map[string]string{"IDENTITY_JWKS_URL": ""},
		},
		{
			name: "storage without bucket",
			env:  map[string]string{"STORAGE_ENABLED": "true"},
		},
		{
			name: "zero action budget",
			env:  map[string]string{"RATE_LIMIT_ACTION_REQUESTS": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := load("")
			assert.Error(t, err)
		})
	}
}
