// ABOUTME: HTTP handlers for contact, category, diagram, and snapshot actions
// ABOUTME: Form posts redirect home; failures surface as notices on the next page
package web

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/harperreed/rolodex/diagram"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/store"
	"github.com/harperreed/rolodex/viz"
)

const maxImportBytes = 10 << 20

// confirmed maps the confirm field set by the page's confirm() prompt.
func confirmed(r *http.Request) editor.Confirmer {
	if r.FormValue("confirm") == "yes" {
		return editor.Always
	}
	return editor.Never
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	saved, err := s.session.SubmitDraft(models.Contact{
		Name:     r.FormValue("name"),
		Phone:    r.FormValue("phone"),
		Location: r.FormValue("location"),
		Website:  r.FormValue("website"),
		Category: r.FormValue("category"),
		Priority: models.ParsePriority(r.FormValue("priority")),
	})
	switch {
	case errors.Is(err, models.ErrNameRequired), errors.Is(err, models.ErrPhoneRequired):
		s.session.Notices().Error("Name and phone are required.")
	case errors.Is(err, store.ErrContactNotFound):
		s.session.Notices().Error("That contact no longer exists. Submit again to add it as new.")
	case err != nil:
		s.session.Notices().Error(err.Error())
	default:
		s.session.Notices().Info("Saved " + saved.Name + ".")
	}
	redirectHome(w, r)
}

func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	s.session.CancelEdit()
	redirectHome(w, r)
}

func (s *Server) handleEditContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := s.session.BeginEdit(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if _, err := s.session.DeleteContact(id, confirmed(r)); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleContactDetail(w http.ResponseWriter, r *http.Request) {
	nodeID := r.URL.Query().Get("id")
	if _, err := uuid.Parse(nodeID); err == nil {
		nodeID = layout.ContactPrefix + nodeID
	}

	detail, ok := s.session.Inspect(nodeID)
	if !ok {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}

	data := map[string]interface{}{
		"Detail": detail,
		"ID":     detail.Contact.ID.String(),
		"Dark":   s.session.Theme() == layout.ThemeDark,
	}
	s.renderTemplate(w, "partials/contact-detail.html", data)
}

type dropResponse struct {
	Moved    bool   `json:"moved"`
	Category string `json:"category,omitempty"`
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.FormValue("x"), 64)
	y, errY := strconv.ParseFloat(r.FormValue("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}
	nodeID := r.FormValue("node")
	pos := layout.Position{X: x, Y: y}

	category, _ := diagram.ResolveDrop(s.session.Graph(), nodeID, pos)
	moved, err := s.session.Drop(nodeID, pos)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := dropResponse{Moved: moved}
	if moved {
		resp.Category = category
	}
	writeJSON(w, resp)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if !s.session.AddCategory(name) && name != "" {
		s.session.Notices().Error("Category " + name + " already exists.")
	}
	redirectHome(w, r)
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	oldName := r.FormValue("old")
	newName := strings.TrimSpace(r.FormValue("new"))
	if !s.session.RenameCategory(oldName, newName) {
		s.session.Notices().Error("Could not rename " + oldName + " to " + newName + ".")
	}
	redirectHome(w, r)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.session.DeleteCategory(r.FormValue("name"), confirmed(r))
	redirectHome(w, r)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.session.SetSearch(r.FormValue("q"))
	redirectHome(w, r)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	s.session.ToggleTheme()
	redirectHome(w, r)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.session.ToggleView()
	redirectHome(w, r)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.session.Export(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+snapshot.DefaultFileName+`"`)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.session.Notices().Error("Import failed: no file uploaded.")
		redirectHome(w, r)
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		s.session.Notices().Error("Import failed: " + snapshot.ErrNotJSONFile.Error() + ".")
		redirectHome(w, r)
		return
	}

	// Import records its own notice either way.
	_ = s.session.Import(file)
	redirectHome(w, r)
}

func (s *Server) handleDiagramSVG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := viz.RenderDiagramSVG(&buf, s.session.Graph(), s.session.Store().Contacts()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDiagramPNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := viz.RenderDiagramPNG(&buf, s.session.Graph(), s.session.Store().Contacts()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleDiagramDOT(w http.ResponseWriter, r *http.Request) {
	dot, err := viz.RenderDiagramDOT(r.Context(), s.session.Graph(), s.session.Store().Contacts())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handlePriorityChart(w http.ResponseWriter, r *http.Request) {
	summary := s.session.Analytics()
	s.writeChart(w, func(buf *bytes.Buffer) error {
		return viz.RenderPriorityPie(buf, summary.ByPriority, s.session.Theme())
	})
}

func (s *Server) handleCategoryChart(w http.ResponseWriter, r *http.Request) {
	summary := s.session.Analytics()
	s.writeChart(w, func(buf *bytes.Buffer) error {
		return viz.RenderCategoryBars(buf, summary.ByCategory, s.session.Theme())
	})
}

func (s *Server) writeChart(w http.ResponseWriter, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
