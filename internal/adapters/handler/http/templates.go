package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"pollsite/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

type indexData struct {
	LatestQuestionList []*domain.Question
}

type detailData struct {
	Question     *domain.Question
	ErrorMessage string
}

type resultsData struct {
	Question *domain.Question
}
