package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kapu/celestia-ai-go/internal/config"
	"github.com/kapu/celestia-ai-go/internal/service/ai"
	"github.com/kapu/celestia-ai-go/internal/session"
	"github.com/kapu/celestia-ai-go/internal/web"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Container bundles the assembled runtime: the HTTP server and, for the
// in-memory session backend, the janitor that expires idle visitors.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *echo.Echo

	memory  *session.MemoryStore
	closers []func()
}

// RunJanitor blocks sweeping expired sessions until ctx is done. It returns
// immediately when sessions live in Redis, which expires keys itself.
func (c *Container) RunJanitor(ctx context.Context) {
	if c == nil || c.memory == nil {
		return
	}
	c.memory.RunJanitor(ctx, c.Config.Session.SweepInterval)
}

// Close releases everything Build opened, in reverse order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build assembles the model provider, the reading service, the session store
// and the web server.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	provider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	readings := ai.NewReadingService(provider, ai.ReadingServiceConfig{
		Model:       cfg.ActiveModel(),
		Temperature: &cfg.LLM.Temperature,
	}, logger)

	store, memory, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, func() {
		_ = store.Close()
	})

	handler := web.NewHandler(readings, store, web.CookieConfig{
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}, logger)

	server, err := web.NewServer(web.ServerConfig{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}, handler, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create web server: %w", err)
	}

	logger.Info("Application assembled",
		zap.String("provider", provider.Name()),
		zap.String("model", cfg.ActiveModel()),
		zap.String("session_backend", cfg.Session.Backend),
	)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Server:  server,
		memory:  memory,
		closers: closers,
	}, nil
}

func newProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ai.Provider, error) {
	httpClient := &http.Client{Timeout: cfg.LLM.Timeout}

	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		provider, err := ai.NewOpenAIProvider(ai.OpenAIProviderConfig{
			APIKey:       cfg.OpenAI.APIKey,
			DefaultModel: cfg.OpenAI.Model,
			BaseURL:      cfg.OpenAI.BaseURL,
			HTTPClient:   httpClient,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
		}
		return provider, nil
	case config.ProviderGemini:
		provider, err := ai.NewGeminiProvider(ctx, ai.GeminiProviderConfig{
			APIKey:       cfg.Gemini.APIKey,
			DefaultModel: cfg.Gemini.Model,
			BaseURL:      cfg.Gemini.BaseURL,
			HTTPClient:   httpClient,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, *session.MemoryStore, error) {
	if cfg.Session.Backend == config.SessionBackendRedis {
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Session.TTL,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		return store, nil, nil
	}

	memory := session.NewMemoryStore(cfg.Session.TTL, logger)
	return memory, memory, nil
}
