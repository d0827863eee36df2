package digest

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/senko/hndaily/internal/domain"
)

//go:embed template.html
var templateHTML string

// Renderer turns an ordered list of stories into a standalone HTML digest
// document. Rendering is pure: the template is parsed once at construction
// and no I/O happens at render time.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded digest template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("digest").Parse(templateHTML)
	if err != nil {
		return nil, fmt.Errorf("parse digest template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type templateData struct {
	Date    string
	Stories []domain.Story
}

// Render produces the digest document for the given stories and date.
func (r *Renderer) Render(stories []domain.Story, date time.Time) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, templateData{
		Date:    date.Format("Monday, January 02, 2006"),
		Stories: stories,
	})
	if err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
