package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type TemplateName string

const (
	TemplateAstrologyReading TemplateName = "astrology_reading.tmpl"
)

var templates = template.Must(template.New("prompts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"))

// PromptBuilder renders embedded text templates. Values are substituted as-is:
// the output goes to a language model, not an interpreter, so nothing is escaped.
type PromptBuilder struct {
	templates *template.Template
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{templates: templates}
}

func (pb *PromptBuilder) Render(name TemplateName, data any) (string, error) {
	tmpl := pb.templates.Lookup(string(name))
	if tmpl == nil {
		return "", fmt.Errorf("unknown prompt template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// BuildAstrologyReading renders the single reading instruction.
func (pb *PromptBuilder) BuildAstrologyReading(data AstrologyReadingData) (string, error) {
	return pb.Render(TemplateAstrologyReading, data)
}
