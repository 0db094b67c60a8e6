package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"LLM_PROVIDER", "LLM_TEMPERATURE", "LLM_TIMEOUT",
		"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"SESSION_BACKEND", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "SESSION_COOKIE_SECURE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, "gemini-3-pro-preview", cfg.ActiveModel())
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadLegacyAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.Gemini.APIKey)
}

func TestLoadOpenAI(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.ActiveModel())
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestLoadRejectsMissingKey(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	t.Setenv("LLM_PROVIDER", "openai")
	_, err = Load()
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Addr: ":8080"},
			LLM:     LLMConfig{Provider: ProviderGemini, Temperature: 0.7},
			Gemini:  GeminiConfig{APIKey: "k"},
			Session: SessionConfig{Backend: SessionBackendMemory, TTL: time.Minute},
		}
	}

	require.NoError(t, base().Validate())

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.LLM.Provider = "claude"
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := base()
		cfg.LLM.Temperature = 3
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown session backend", func(t *testing.T) {
		cfg := base()
		cfg.Session.Backend = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := base()
		cfg.Session.TTL = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadZeroTemperatureIsKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TEMPERATURE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, float32(0), cfg.LLM.Temperature)
}
