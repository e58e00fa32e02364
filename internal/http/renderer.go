package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// TemplateRenderer renders HTML templates for UI responses. Pages render
// into the "layout" template; fragments render a named partial directly.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the
// provided filesystem.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t, err := template.New("root").Funcs(templateFuncs()).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{t: t, logger: logger}, nil
}

func templateFuncs() template.FuncMap {
	// Optional fields arrive as pointers, so the formatters take both forms.
	deref := func(v any) (time.Time, bool) {
		switch t := v.(type) {
		case time.Time:
			return t, !t.IsZero()
		case *time.Time:
			if t == nil || t.IsZero() {
				return time.Time{}, false
			}
			return *t, true
		default:
			return time.Time{}, false
		}
	}
	return template.FuncMap{
		"fmtTime": func(v any) string {
			t, ok := deref(v)
			if !ok {
				return ""
			}
			return t.Local().Format("02.01.2006 15:04")
		},
		"fmtDate": func(v any) string {
			t, ok := deref(v)
			if !ok {
				return ""
			}
			return t.Local().Format("02.01.2006")
		},
		"fmtMoney": func(v any) string {
			switch n := v.(type) {
			case float64:
				return fmt.Sprintf("%.2f", n)
			case *float64:
				if n == nil {
					return ""
				}
				return fmt.Sprintf("%.2f", *n)
			default:
				return ""
			}
		},
	}
}

// Render writes the named template to the response, buffering first so a
// template error never produces a half-written page.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := tr.t.ExecuteTemplate(&buf, name, data); err != nil {
		tr.logger.Error("template render failed",
			slog.String("template", name), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
