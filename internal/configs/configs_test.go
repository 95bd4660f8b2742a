package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so tests see a clean slate.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "AUTH_TOKEN",
		"OWNER_PHONE", "MAX_MATCH_RESULTS", "MIN_COMMON_INTERESTS", "DATABASE_URL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "changeme", cfg.AuthToken)
	assert.Equal(t, 5, cfg.MaxMatchResults)
	assert.Equal(t, 1, cfg.MinCommonInterests)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigParsesOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "80")
	_, err = LoadConfig()
	assert.Error(t, err, "privileged ports are rejected")
}

func TestLoadConfigProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err, "production must not fall back to the insecure default token")

	t.Setenv("AUTH_TOKEN", "secret-token")
	_, err = LoadConfig()
	require.Error(t, err, "production requires an explicit DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://app@db:5432/puchmatch")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.AuthToken)
}

func TestLoadConfigMatcherTuning(t *testing.T) {
	clearEnv(t)

	t.Setenv("MAX_MATCH_RESULTS", "10")
	t.Setenv("MIN_COMMON_INTERESTS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxMatchResults)
	assert.Equal(t, 3, cfg.MinCommonInterests)

	t.Setenv("MAX_MATCH_RESULTS", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
