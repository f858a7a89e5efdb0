package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "grazegarden", cfg.DBName)
	assert.True(t, cfg.OrnamentsEnabled, "ornament bonus defaults to enabled")
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_OrnamentsDisabled(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("ORNAMENTS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.OrnamentsEnabled)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "graze",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "grazegarden",
	}

	assert.Equal(t, "postgres://graze:secret@db:5432/grazegarden?sslmode=disable", cfg.GetDBConnString())
}
