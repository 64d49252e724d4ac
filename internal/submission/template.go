package submission

import (
	"embed"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/northwind-studio/website/pkg/logger"
)

//go:embed templates/*.hbs
var templatesFS embed.FS

// TemplateContext is the data passed to templates
type TemplateContext map[string]interface{}

// RenderResult contains the rendered enquiry email.
type RenderResult struct {
	Subject string
	HTML    string
	Text    string
}

// TemplateRenderer renders notification emails from the embedded Handlebars
// templates. Templates are parsed once at construction.
type TemplateRenderer struct {
	siteName  string
	log       *slog.Logger
	templates map[string]*raymond.Template
}

// NewTemplateRenderer parses every embedded template.
func NewTemplateRenderer(siteName string, log *slog.Logger) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		siteName:  siteName,
		log:       log.With(logger.Scope("submission.template")),
		templates: make(map[string]*raymond.Template),
	}

	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hbs") {
			continue
		}
		content, err := templatesFS.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", entry.Name(), err)
		}
		tmpl, err := raymond.Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		r.templates[strings.TrimSuffix(entry.Name(), ".hbs")] = tmpl
	}

	r.log.Debug("loaded embedded email templates", slog.Int("templates", len(r.templates)))
	return r, nil
}

// Render executes the named template.
func (r *TemplateRenderer) Render(name string, ctx TemplateContext) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}
	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out, nil
}

// RenderEnquiry renders the notification sent to the agency inbox.
func (r *TemplateRenderer) RenderEnquiry(e Enquiry) (*RenderResult, error) {
	rows := e.Rows()
	ctxRows := make([]map[string]string, len(rows))
	for i, row := range rows {
		ctxRows[i] = map[string]string{"label": row.Label, "value": row.Value}
	}

	ctx := TemplateContext{
		"siteName":    r.siteName,
		"id":          e.ID,
		"submittedAt": e.SubmittedAt.Format(time.RFC1123),
		"rows":        ctxRows,
	}

	html, err := r.Render("enquiry.html", ctx)
	if err != nil {
		return nil, err
	}
	text, err := r.Render("enquiry.txt", ctx)
	if err != nil {
		return nil, err
	}

	subject := "New website enquiry"
	if name := e.Fields["name"]; name != "" {
		subject = fmt.Sprintf("New website enquiry from %s", name)
	}
	if pkg := e.Fields["package"]; pkg != "" {
		subject = fmt.Sprintf("%s (%s)", subject, pkg)
	}

	return &RenderResult{Subject: subject, HTML: html, Text: text}, nil
}
