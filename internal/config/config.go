package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/celestia-ai-go/internal/util"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Session SessionConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type LLMConfig struct {
	Provider    string
	Temperature float32
	// Timeout of zero leaves the transport defaults in charge.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type SessionConfig struct {
	Backend       string
	TTL           time.Duration
	SweepInterval time.Duration
	CookieSecure  bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:               getEnv("HTTP_ADDR", ":8080"),
			CORSAllowedOrigins: util.SplitCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		LLM: LLMConfig{
			Provider:    util.Normalize(getEnv("LLM_PROVIDER", ProviderGemini)),
			Temperature: getEnvFloat32("LLM_TEMPERATURE", 0.7),
			Timeout:     getEnvDuration("LLM_TIMEOUT", 0),
		},
		Gemini: GeminiConfig{
			APIKey:  firstEnv("GEMINI_API_KEY", "API_KEY"),
			Model:   getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4.1"),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
		},
		Session: SessionConfig{
			Backend:       util.Normalize(getEnv("SESSION_BACKEND", SessionBackendMemory)),
			TTL:           getEnvDuration("SESSION_TTL", 30*time.Minute),
			SweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
			CookieSecure:  getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}

	switch c.LLM.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}

	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// ActiveModel returns the model name configured for the selected provider.
func (c *Config) ActiveModel() string {
	if c.LLM.Provider == ProviderOpenAI {
		return c.OpenAI.Model
	}
	return c.Gemini.Model
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvFloat32(key string, defaultValue float32) float32 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
