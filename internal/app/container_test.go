package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kapu/celestia-ai-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Addr: ":0", CORSAllowedOrigins: []string{"*"}},
		LLM:    config.LLMConfig{Provider: config.ProviderGemini, Temperature: 0.7},
		Gemini: config.GeminiConfig{APIKey: "test-key", Model: "gemini-3-pro-preview"},
		Session: config.SessionConfig{
			Backend:       config.SessionBackendMemory,
			TTL:           time.Minute,
			SweepInterval: 10 * time.Millisecond,
		},
	}
}

func TestBuildRejectsNilInputs(t *testing.T) {
	_, err := Build(context.Background(), nil, zap.NewNop())
	assert.Error(t, err)

	_, err = Build(context.Background(), testConfig(), nil)
	assert.Error(t, err)
}

func TestBuildServesIndex(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderOpenAI} {
		t.Run(provider, func(t *testing.T) {
			cfg := testConfig()
			cfg.LLM.Provider = provider
			cfg.OpenAI = config.OpenAIConfig{APIKey: "test-key", Model: "gpt-4.1"}

			container, err := Build(context.Background(), cfg, zap.NewNop())
			require.NoError(t, err)
			defer container.Close()

			rec := httptest.NewRecorder()
			container.Server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Reveal My Destiny")
		})
	}
}

func TestBuildFailsWhenRedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.Session.Backend = config.SessionBackendRedis
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

	_, err := Build(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	container, err := Build(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer container.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		container.RunJanitor(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
