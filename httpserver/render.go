package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders named html templates for echo.Context.Render.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	t, err := template.New("").ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

// MustNewTemplateRenderer parses the embedded templates and panics on error.
func MustNewTemplateRenderer() *TemplateRenderer {
	r, err := NewTemplateRenderer(templateFS)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
