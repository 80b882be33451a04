package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "DEBUG", "VERSION", "PORT", "SENTRY_DSN",
		"APIFY_TOKEN", "APIFY_ACTOR", "OPENAI_API_KEY", "OPENAI_MODEL",
		"ALLOWED_ORIGINS", "REDIS_ADDR",
	} {
		// t.Setenv registers restoration; the unset makes getEnv fall back
		// to its default.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultsApplyWhenUnset", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
		assert.False(t, cfg.ConfigOK())
	})

	t.Run("ReadsEnvironment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("APIFY_TOKEN", "apify-token")
		t.Setenv("OPENAI_API_KEY", "openai-key")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example , https://b.example")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.ConfigOK())
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	})
}
