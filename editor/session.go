// ABOUTME: Session state shared by every surface: store, search, theme, view, form
// ABOUTME: Wraps store mutations with confirmations, notices, and change hooks
package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/rolodex/analytics"
	"github.com/harperreed/rolodex/diagram"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/store"
)

type ViewMode int

const (
	ViewDiagram ViewMode = iota
	ViewAnalytics
)

func (v ViewMode) String() string {
	if v == ViewAnalytics {
		return "analytics"
	}
	return "diagram"
}

type Session struct {
	store   *store.Store
	notices Notices

	mu       sync.Mutex
	search   string
	theme    layout.Theme
	view     ViewMode
	form     Form
	onChange func(models.Snapshot)
}

func NewSession(s *store.Store, theme layout.Theme) *Session {
	return &Session{
		store: s,
		theme: theme,
		form:  NewForm(),
	}
}

func (s *Session) Store() *store.Store { return s.store }

func (s *Session) Notices() *Notices { return &s.notices }

// SetOnChange registers fn to run with a fresh snapshot after every change to
// contacts or categories.
func (s *Session) SetOnChange(fn func(models.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Session) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(s.store.Snapshot())
	}
}

func (s *Session) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *Session) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

func (s *Session) Theme() layout.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Session) ToggleTheme() layout.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == layout.ThemeDark {
		s.theme = layout.ThemeLight
	} else {
		s.theme = layout.ThemeDark
	}
	return s.theme
}

func (s *Session) View() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) ToggleView() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewDiagram {
		s.view = ViewAnalytics
	} else {
		s.view = ViewDiagram
	}
	return s.view
}

// Graph derives the diagram for the current state.
func (s *Session) Graph() layout.Graph {
	snap := s.store.Snapshot()
	return layout.Derive(snap.Contacts, snap.Categories, s.Search(), s.Theme())
}

func (s *Session) Analytics() analytics.Summary {
	return analytics.Summarize(s.store.Snapshot())
}

// Form returns a copy of the editor form.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetDraft replaces the draft while keeping the current mode.
func (s *Session) SetDraft(draft models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setDraftLocked(draft)
}

func (s *Session) setDraftLocked(draft models.Contact) {
	if id, ok := s.form.Mode.EditingID(); ok {
		draft.ID = id
	}
	s.form.Draft = draft
}

// BeginEdit loads a stored contact into the form.
func (s *Session) BeginEdit(id uuid.UUID) error {
	contact, ok := s.store.Get(id)
	if !ok {
		return store.ErrContactNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Begin(contact)
	return nil
}

func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
}

// Submit saves the form's draft.
func (s *Session) Submit() (models.Contact, error) {
	s.mu.Lock()
	saved, err := s.form.Submit(s.store)
	s.mu.Unlock()
	if err != nil {
		return models.Contact{}, err
	}
	s.changed()
	return saved, nil
}

// SubmitDraft replaces the draft and saves it under one hold of the form, so
// a BeginEdit from another request cannot land in between.
func (s *Session) SubmitDraft(draft models.Contact) (models.Contact, error) {
	s.mu.Lock()
	s.setDraftLocked(draft)
	saved, err := s.form.Submit(s.store)
	s.mu.Unlock()
	if err != nil {
		return models.Contact{}, err
	}
	s.changed()
	return saved, nil
}

// AddContact saves draft as a new contact. The shared form is untouched.
func (s *Session) AddContact(draft models.Contact) (models.Contact, error) {
	s.mu.Lock()
	f := NewForm()
	f.Draft = draft
	saved, err := f.Submit(s.store)
	s.mu.Unlock()
	if err != nil {
		return models.Contact{}, err
	}
	s.changed()
	return saved, nil
}

// UpdateContact loads the stored contact, applies edit to a copy, and saves
// it in place in one step. The shared form is untouched.
func (s *Session) UpdateContact(id uuid.UUID, edit func(*models.Contact)) (models.Contact, error) {
	s.mu.Lock()
	contact, ok := s.store.Get(id)
	if !ok {
		s.mu.Unlock()
		return models.Contact{}, store.ErrContactNotFound
	}
	var f Form
	f.Begin(contact)
	edit(&f.Draft)
	f.Draft.ID = id
	saved, err := f.Submit(s.store)
	s.mu.Unlock()
	if err != nil {
		return models.Contact{}, err
	}
	s.changed()
	return saved, nil
}

// Inspect returns the detail overlay for a clicked node.
func (s *Session) Inspect(nodeID string) (diagram.Detail, bool) {
	contact, ok := diagram.Inspect(s.Graph(), s.store, nodeID)
	if !ok {
		return diagram.Detail{}, false
	}
	return diagram.NewDetail(contact), true
}

// Drop handles a drag release of nodeID at pos.
func (s *Session) Drop(nodeID string, pos layout.Position) (bool, error) {
	moved, err := diagram.Drop(s.store, s.Graph(), nodeID, pos)
	if err != nil {
		return false, err
	}
	if moved {
		slog.Debug("contact recategorized by drop", "node", nodeID, "x", pos.X, "y", pos.Y)
		s.changed()
	}
	return moved, nil
}

// MoveContact files a contact under category directly.
func (s *Session) MoveContact(id uuid.UUID, category string) (bool, error) {
	if category != "" && !s.store.HasCategory(category) {
		return false, fmt.Errorf("unknown category %q", category)
	}
	moved, err := s.store.Move(id, category)
	if err != nil {
		return false, err
	}
	if moved {
		s.changed()
	}
	return moved, nil
}

// DeleteContact removes a contact after confirmation. Declining changes
// nothing and reports false.
func (s *Session) DeleteContact(id uuid.UUID, c Confirmer) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, store.ErrContactNotFound
	}
	if !c.Confirm(PromptDeleteContact) {
		return false, nil
	}
	if err := s.store.Delete(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	if editing, ok := s.form.Mode.EditingID(); ok && editing == id {
		s.form.Reset()
	}
	s.mu.Unlock()

	s.changed()
	return true, nil
}

func (s *Session) AddCategory(name string) bool {
	if !s.store.AddCategory(name) {
		return false
	}
	s.changed()
	return true
}

func (s *Session) RenameCategory(oldName, newName string) bool {
	if !s.store.RenameCategory(oldName, newName) {
		return false
	}
	s.mu.Lock()
	if s.form.Draft.Category == oldName {
		s.form.Draft.Category = newName
	}
	s.mu.Unlock()
	s.changed()
	return true
}

// DeleteCategory removes a category after confirmation.
func (s *Session) DeleteCategory(name string, c Confirmer) bool {
	if !s.store.HasCategory(name) || !c.Confirm(PromptDeleteCategory) {
		return false
	}
	if !s.store.DeleteCategory(name) {
		return false
	}
	s.mu.Lock()
	if s.form.Draft.Category == name {
		s.form.Draft.Category = ""
	}
	s.mu.Unlock()
	s.changed()
	return true
}

// Import replaces contacts and categories with the snapshot read from r.
// A parse failure leaves the state untouched and raises an error notice.
func (s *Session) Import(r io.Reader) error {
	snap, err := snapshot.Decode(r)
	if err != nil {
		s.notices.Error(fmt.Sprintf("Import failed: %v", err))
		slog.Warn("snapshot import failed", "error", err)
		return err
	}
	s.Load(snap)
	s.notices.Info(fmt.Sprintf("Imported %d contacts in %d categories", len(snap.Contacts), len(snap.Categories)))
	s.changed()
	return nil
}

// Load replaces state with snap without notices or change hooks.
func (s *Session) Load(snap models.Snapshot) {
	s.store.Replace(snap)
	s.mu.Lock()
	s.form.Reset()
	s.mu.Unlock()
}

// Export writes the current snapshot to w.
func (s *Session) Export(w io.Writer) error {
	return snapshot.Encode(w, s.store.Snapshot())
}

// ReloadFile re-imports the snapshot file the session is saved to. Change
// hooks do not run, since the file already holds the new state, and a file
// matching the current state is ignored so our own saves do not reset the form.
func (s *Session) ReloadFile(path string) (bool, error) {
	snap, err := snapshot.ReadFile(path)
	if err != nil {
		if !errors.Is(err, snapshot.ErrMalformed) {
			err = fmt.Errorf("failed to import %s: %w", path, err)
		}
		s.notices.Error(fmt.Sprintf("Import failed: %v", err))
		return false, err
	}
	if reflect.DeepEqual(snap, s.store.Snapshot()) {
		return false, nil
	}
	s.Load(snap)
	s.notices.Info(fmt.Sprintf("Reloaded %s", path))
	return true, nil
}
