package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.tmpl templates/celestia.css
var templatesFS embed.FS

// TemplateRenderer adapts html/template to echo.Renderer.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	rawCSS, err := templatesFS.ReadFile("templates/celestia.css")
	if err != nil {
		return nil, fmt.Errorf("load stylesheet: %w", err)
	}

	tmpl, err := template.New("celestia").Funcs(template.FuncMap{
		"css": func() template.CSS { return template.CSS(rawCSS) },
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
