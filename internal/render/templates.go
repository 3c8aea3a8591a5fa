package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

// Renderer executes the embedded widget templates. Parse once at startup;
// every render regenerates the fragment wholesale, so templates never
// carry state between executions.
type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(tmplFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse widget templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// CardView is the basic list card: header with count, summary cards,
// more-info dispatch on card-body click.
type CardView struct {
	WidgetID string
	Entity   string
	List     ListView
}

// EnhancedView adds the detail modal; Detail is nil in the LIST phase.
type EnhancedView struct {
	WidgetID string
	Entity   string
	List     ListView
	Detail   *DetailView
}

// MapCardView is the standalone map card.
type MapCardView struct {
	WidgetID string
	Entity   string
	Title    string
	Height   string
	Map      MapView
}

// MessageView renders a static explanatory message in place of content,
// e.g. when the configured entity has no snapshot yet.
type MessageView struct {
	Text string
}

func (r *Renderer) Card(v CardView) ([]byte, error)         { return r.exec("card", v) }
func (r *Renderer) Enhanced(v EnhancedView) ([]byte, error) { return r.exec("enhanced", v) }
func (r *Renderer) MapCard(v MapCardView) ([]byte, error)   { return r.exec("mapcard", v) }
func (r *Renderer) Message(v MessageView) ([]byte, error)   { return r.exec("message", v) }

func (r *Renderer) exec(name string, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
