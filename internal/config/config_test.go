// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 168, cfg.JWT.ExpiresIn)
	assert.Equal(t, 900000, cfg.RateLimit.WindowMs)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "admin@artificialstone.com", cfg.Admin.Email)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "24")
	t.Setenv("ALLOWED_ORIGINS", "https://artstone.example.com,https://admin.artstone.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.ExpiresIn)
	assert.Equal(t, []string{
		"https://artstone.example.com",
		"https://admin.artstone.example.com",
	}, cfg.CORS.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: "5432", User: "postgres",
		Password: "secret", Database: "artstone", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=artstone sslmode=disable",
		d.DSN())
}
