package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome      = "home.html"
	PageDashboard = "dashboard.html"
	PageError     = "error.html"
)

// Page is the data handed to every template
type Page struct {
	Title string
	Data  interface{}
}

// ErrorPage is the data of the error template
type ErrorPage struct {
	Status  int
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
	log   *logrus.Logger
}

// NewRenderer parses every page together with the shared layout
func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"currentYear": func() int { return time.Now().Year() },
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageHome, PageDashboard, PageError} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, log: log}, nil
}

// Render executes page into a buffer first so a template failure never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.log.Errorf("Unknown page template %s", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		r.log.Errorf("Failed to render %s: %+v", page, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Error renders the error page with status
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, PageError, Page{
		Title: http.StatusText(status),
		Data:  ErrorPage{Status: status, Message: message},
	})
}
