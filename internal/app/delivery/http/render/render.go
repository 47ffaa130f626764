// Package render draws the specialization management screens from embedded
// html templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageSpecializations = "specializations"
	PageConfirmDelete   = "confirm_delete"
)

// PageData is everything a console screen can show.
type PageData struct {
	Title          string
	Notices        []responses.Notice
	Health         *responses.HealthStatus
	List           responses.SpecializationListSnapshot
	Specialization *responses.Specialization
	RawID          string
	ConfirmMessage string
}

type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"noticeClass": func(n responses.Notice) string {
			if n.IsDestructive() {
				return "notice notice-destructive"
			}
			return "notice"
		},
		"statusLabel": func(active bool) string {
			if active {
				return "Active"
			}
			return "Inactive"
		},
		"toggleLabel": func(active bool) string {
			if active {
				return "Deactivate"
			}
			return "Activate"
		},
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range []string{PageSpecializations, PageConfirmDelete} {
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templatesFS, "templates/base.html", "templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Page renders into a buffer first so a template failure never leaves a
// half-written page behind.
func (rn *Renderer) Page(w http.ResponseWriter, statusCode int, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}
