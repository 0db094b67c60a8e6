package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiProviderConfig struct {
	APIKey       string
	DefaultModel string
	// BaseURL overrides the Gemini endpoint. Empty means the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiProvider wraps the Gemini client for structured JSON generation.
type GeminiProvider struct {
	client       *genai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGeminiProvider(ctx context.Context, cfg GeminiProviderConfig, logger *zap.Logger) (*GeminiProvider, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.DefaultModel
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiProvider{
		client:       client,
		defaultModel: model,
		logger:       logger,
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "Gemini"
}

func (g *GeminiProvider) DefaultModel() string {
	return g.defaultModel
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, schema *ResponseSchema, opts *GenerateOptions) (ProviderResult, error) {
	if g.client == nil {
		return ProviderResult{}, fmt.Errorf("gemini client not initialized")
	}

	modelName := resolveModel(opts, g.defaultModel)
	config := resolveConfig(opts)

	g.logger.Debug("Generating with Gemini", zap.String("model", modelName))

	genConfig := &genai.GenerateContentConfig{
		Temperature: config.Temperature,
		TopP:        config.TopP,
		TopK:        config.TopK,
	}
	if config.MaxOutputTokens != nil {
		genConfig.MaxOutputTokens = *config.MaxOutputTokens
	}
	if schema != nil {
		genConfig.ResponseMIMEType = "application/json"
		genConfig.ResponseSchema = toGeminiSchema(schema)
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelName, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, genConfig)
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.String("model", modelName), zap.Error(err))
		return ProviderResult{}, err
	}

	text := extractTextFromGeminiResponse(resp)
	if text == "" {
		return ProviderResult{}, fmt.Errorf("empty response from Gemini")
	}

	g.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return ProviderResult{Text: text, Model: modelName}, nil
}

func toGeminiSchema(s *ResponseSchema) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		properties[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
		}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       properties,
		Required:         s.Required(),
		PropertyOrdering: s.Required(),
	}
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}

func resolveModel(opts *GenerateOptions, fallback string) string {
	if opts != nil && opts.Model != "" {
		return opts.Model
	}
	return fallback
}

func resolveConfig(opts *GenerateOptions) ModelConfig {
	if opts == nil {
		return ModelConfig{}
	}
	return opts.Config
}
