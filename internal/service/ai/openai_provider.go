package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

type OpenAIProviderConfig struct {
	APIKey       string
	DefaultModel string
	BaseURL      string
	HTTPClient   *http.Client
}

// OpenAIProvider wraps the OpenAI chat completion client.
type OpenAIProvider struct {
	client       *openai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewOpenAIProvider(cfg OpenAIProviderConfig, logger *zap.Logger) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	// The SDK retries twice by default; a failed reading is surfaced as-is.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	model := cfg.DefaultModel
	if model == "" {
		model = DefaultOpenAIModel
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:       &client,
		defaultModel: model,
		logger:       logger,
	}, nil
}

func (o *OpenAIProvider) Name() string {
	return "OpenAI"
}

func (o *OpenAIProvider) DefaultModel() string {
	return o.defaultModel
}

func (o *OpenAIProvider) Generate(ctx context.Context, prompt string, schema *ResponseSchema, opts *GenerateOptions) (ProviderResult, error) {
	if o.client == nil {
		return ProviderResult{}, fmt.Errorf("OpenAI client not initialized")
	}

	modelName := resolveModel(opts, o.defaultModel)
	config := resolveConfig(opts)

	o.logger.Debug("Generating with OpenAI", zap.String("model", modelName))

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if config.MaxOutputTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*config.MaxOutputTokens))
	}

	// gpt-5 models reject sampling parameters.
	if !strings.HasPrefix(modelName, "gpt-5") {
		if config.Temperature != nil {
			params.Temperature = openai.Float(float64(*config.Temperature))
		}
		if config.TopP != nil {
			params.TopP = openai.Float(float64(*config.TopP))
		}
	}

	if schema != nil {
		params.Messages = []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You must respond with valid JSON only. Do not include any text outside the JSON object."),
			openai.UserMessage(prompt),
		}
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schema.Name,
					Schema: schema.JSONSchema(),
					Strict: openai.Bool(true),
				},
			},
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		o.logger.Error("OpenAI generation failed", zap.String("model", modelName), zap.Error(err))
		return ProviderResult{}, err
	}

	if len(resp.Choices) == 0 {
		return ProviderResult{}, fmt.Errorf("no choices in OpenAI response")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return ProviderResult{}, fmt.Errorf("empty response from OpenAI")
	}

	o.logger.Debug("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return ProviderResult{Text: text, Model: modelName}, nil
}
