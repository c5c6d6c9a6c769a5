// ABOUTME: Web UI server with embedded templates
// ABOUTME: Serves the interactive contact diagram, editor form, analytics, and JSON export/import
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/harperreed/rolodex/analytics"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/viz"
)

//go:embed templates/*
var templatesFS embed.FS

type Server struct {
	session   *editor.Session
	templates *template.Template
	metrics   *metrics
	mux       *http.ServeMux
}

func NewServer(session *editor.Session) (*Server, error) {
	// Helper functions for templates
	funcMap := template.FuncMap{
		"priorityColor": func(p interface{}) string {
			return viz.Hex(viz.PriorityColor(models.Priority(fmt.Sprint(p))))
		},
		"percent": func(part, total int) int {
			if total == 0 {
				return 0
			}
			return part * 100 / total
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		session:   session,
		templates: tmpl,
		metrics:   newMetrics(session.Store()),
		mux:       http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	// Editor form and contact actions
	s.mux.HandleFunc("POST /contacts", s.handleSubmitContact)
	s.mux.HandleFunc("POST /contacts/cancel", s.handleCancelEdit)
	s.mux.HandleFunc("POST /contacts/{id}/edit", s.handleEditContact)
	s.mux.HandleFunc("POST /contacts/{id}/delete", s.handleDeleteContact)

	// Diagram interactions
	s.mux.HandleFunc("GET /partials/contact-detail", s.handleContactDetail)
	s.mux.HandleFunc("POST /drop", s.handleDrop)

	// Categories
	s.mux.HandleFunc("POST /categories", s.handleAddCategory)
	s.mux.HandleFunc("POST /categories/rename", s.handleRenameCategory)
	s.mux.HandleFunc("POST /categories/delete", s.handleDeleteCategory)

	// View state
	s.mux.HandleFunc("POST /search", s.handleSearch)
	s.mux.HandleFunc("POST /theme", s.handleTheme)
	s.mux.HandleFunc("POST /view", s.handleView)

	// Snapshot transfer
	s.mux.HandleFunc("GET /export", s.handleExport)
	s.mux.HandleFunc("POST /import", s.handleImport)

	// Renderings
	s.mux.HandleFunc("GET /diagram.svg", s.handleDiagramSVG)
	s.mux.HandleFunc("GET /diagram.png", s.handleDiagramPNG)
	s.mux.HandleFunc("GET /diagram.dot", s.handleDiagramDOT)
	s.mux.HandleFunc("GET /charts/priority.svg", s.handlePriorityChart)
	s.mux.HandleFunc("GET /charts/category.svg", s.handleCategoryChart)

	s.mux.Handle("GET /metrics", s.metrics.handler())
}

// Handler returns the routes wrapped in logging and metrics middleware.
func (s *Server) Handler() http.Handler {
	return logRequests(s.metrics.instrument(s.mux))
}

// Start serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting web server", "url", "http://localhost"+addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type formView struct {
	Draft     models.Contact
	Editing   bool
	EditingID string
}

type pageData struct {
	Title      string
	Theme      string
	Dark       bool
	View       string
	Search     string
	Categories []string
	Priorities []models.Priority
	Form       formView
	Notices    []editor.Notice
	Diagram    template.HTML
	Summary    analytics.Summary
	PieChart   template.HTML
	BarChart   template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.session.Store().Snapshot()
	theme := s.session.Theme()
	form := s.session.Form()

	data := pageData{
		Title:      "Rolodex",
		Theme:      theme.String(),
		Dark:       theme == layout.ThemeDark,
		View:       s.session.View().String(),
		Search:     s.session.Search(),
		Categories: snap.Categories,
		Priorities: models.Priorities(),
		Form:       formView{Draft: form.Draft},
		Notices:    s.session.Notices().Drain(),
	}
	if id, ok := form.Mode.EditingID(); ok {
		data.Form.Editing = true
		data.Form.EditingID = id.String()
	}

	var buf bytes.Buffer
	if s.session.View() == editor.ViewAnalytics {
		data.Summary = analytics.Summarize(snap)
		if err := viz.RenderPriorityPie(&buf, data.Summary.ByPriority, theme); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.PieChart = inlineSVG(buf.String())
		buf.Reset()
		if err := viz.RenderCategoryBars(&buf, data.Summary.ByCategory, theme); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.BarChart = inlineSVG(buf.String())
	} else {
		if err := viz.RenderDiagramSVG(&buf, s.session.Graph(), snap.Contacts); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Diagram = inlineSVG(buf.String())
	}

	s.renderTemplate(w, "layout.html", data)
}

// inlineSVG drops the XML prolog so the document can sit inside HTML. The
// renderers escape all user text.
func inlineSVG(doc string) template.HTML {
	if i := strings.Index(doc, "<svg"); i >= 0 {
		doc = doc[i:]
	}
	return template.HTML(doc) //nolint:gosec // generated by viz with escaped text
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("template error", "template", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
