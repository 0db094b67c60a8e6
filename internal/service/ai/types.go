package ai

import (
	"context"

	"github.com/kapu/celestia-ai-go/internal/domain"
)

// ModelConfig holds sampling settings. A nil field is left out of the request
// so the model's own default applies.
type ModelConfig struct {
	Temperature     *float32
	TopP            *float32
	TopK            *float32
	MaxOutputTokens *int32
}

// GenerateMetadata contains metadata about the generation
type GenerateMetadata struct {
	Provider string
	Model    string
}

// GenerateOptions holds options for AI generation
type GenerateOptions struct {
	Model  string
	Config ModelConfig
}

type ProviderResult struct {
	Text  string
	Model string
}

// Provider is one configured model backend. Exactly one is active per process.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, schema *ResponseSchema, opts *GenerateOptions) (ProviderResult, error)
}

// SchemaField is a required top-level string property of the expected output.
type SchemaField struct {
	Name        string
	Description string
}

// ResponseSchema describes a flat JSON object of required strings. Providers
// translate it into their native structured-output format.
type ResponseSchema struct {
	Name   string
	Fields []SchemaField
}

func (s *ResponseSchema) Required() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// JSONSchema renders the schema as a draft-2020 style object, the form OpenAI expects.
func (s *ResponseSchema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		properties[f.Name] = map[string]any{
			"type":        "string",
			"description": f.Description,
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             s.Required(),
		"additionalProperties": false,
	}
}

// ReadingSchema is the fixed output contract: three short sign labels and two long narratives.
var ReadingSchema = &ResponseSchema{
	Name: "astrology_reading",
	Fields: []SchemaField{
		{Name: domain.FieldSunSign, Description: "The Zodiac sign of the Sun."},
		{Name: domain.FieldMoonSign, Description: "The Zodiac sign of the Moon."},
		{Name: domain.FieldRisingSign, Description: "The Rising sign (Ascendant)."},
		{Name: domain.FieldNatalAnalysis, Description: "A detailed 2-3 paragraph analysis of the person's character, strengths, and challenges based on their natal chart."},
		{Name: domain.FieldCurrentPrediction, Description: "A detailed 2-3 paragraph forecast for the current time period, discussing relevant transits and advice."},
	},
}
