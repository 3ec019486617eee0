package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("MAX_RETRIES", "")
	t.Setenv("RETRY_BASE_DELAY", "")

	cfg := LoadConfig()
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.Retry.BaseDelay)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("RETRY_BASE_DELAY", "500ms")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.BaseDelay)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{
		Retry: RetryConfig{MaxRetries: 3, BaseDelay: time.Second},
	}
	assert.Error(t, cfg.Validate())

	cfg.Gemini.APIKey = "k"
	assert.NoError(t, cfg.Validate())
}
