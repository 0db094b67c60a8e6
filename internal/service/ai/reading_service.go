package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/celestia-ai-go/internal/domain"
	"github.com/kapu/celestia-ai-go/internal/prompt"
	"github.com/kapu/celestia-ai-go/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

const (
	DefaultGeminiModel = "gemini-3-pro-preview"
	DefaultOpenAIModel = "gpt-4.1"

	DefaultTemperature float32 = 0.7
)

type ReadingServiceConfig struct {
	// Model overrides the provider's default model when set.
	Model string
	// Temperature defaults to DefaultTemperature when nil. Zero is honoured.
	Temperature *float32
}

// ReadingService is the bridge between birth details and the configured model.
// One call per Reading: no retry, no cache, no fallback provider.
type ReadingService struct {
	provider Provider
	prompts  *prompt.PromptBuilder
	opts     *GenerateOptions
	logger   *zap.Logger
}

var _ domain.Oracle = (*ReadingService)(nil)

func NewReadingService(provider Provider, cfg ReadingServiceConfig, logger *zap.Logger) *ReadingService {
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	// Only temperature is sent; the output budget stays with the model.
	opts := &GenerateOptions{
		Model:  cfg.Model,
		Config: ModelConfig{Temperature: &temperature},
	}

	return &ReadingService{
		provider: provider,
		prompts:  prompt.NewPromptBuilder(),
		opts:     opts,
		logger:   logger,
	}
}

func (s *ReadingService) Reading(ctx context.Context, details domain.BirthDetails) (*domain.AstrologyReading, error) {
	start := time.Now()

	reading, metadata, err := s.safeGenerate(ctx, details)
	if err != nil {
		s.logger.Error("Astrology reading unavailable",
			zap.String("provider", s.provider.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, errors.NewReadingUnavailableError(s.provider.Name(), err)
	}

	s.logger.Info("Astrology reading generated",
		zap.String("provider", metadata.Provider),
		zap.String("model", metadata.Model),
		zap.Duration("elapsed", time.Since(start)),
	)
	return reading, nil
}

// safeGenerate turns a provider panic into an ordinary failure.
func (s *ReadingService) safeGenerate(ctx context.Context, details domain.BirthDetails) (reading *domain.AstrologyReading, metadata *GenerateMetadata, err error) {
	var pc panics.Catcher
	pc.Try(func() {
		reading, metadata, err = s.generate(ctx, details)
	})
	if recovered := pc.Recovered(); recovered != nil {
		return nil, nil, recovered.AsError()
	}
	return reading, metadata, err
}

func (s *ReadingService) generate(ctx context.Context, details domain.BirthDetails) (*domain.AstrologyReading, *GenerateMetadata, error) {
	text, err := s.prompts.BuildAstrologyReading(prompt.AstrologyReadingData{
		Date:    details.Date,
		Time:    details.Time,
		City:    details.City,
		Country: details.Country,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build prompt: %w", err)
	}

	result, err := s.provider.Generate(ctx, text, ReadingSchema, s.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}

	metadata := &GenerateMetadata{
		Provider: s.provider.Name(),
		Model:    result.Model,
	}

	var reading domain.AstrologyReading
	if err := decodeJSON(result.Text, metadata, &reading, s.logger); err != nil {
		return nil, nil, err
	}
	if err := reading.Validate(); err != nil {
		return nil, nil, fmt.Errorf("schema check: %w", err)
	}

	return &reading, metadata, nil
}
