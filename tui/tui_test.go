// ABOUTME: Tests for TUI key handling
// ABOUTME: Drives the model through keystrokes and checks session state and view transitions
package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/rolodex/editor"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func newTestModel(t *testing.T, categories ...string) (Model, *editor.Session) {
	t.Helper()
	sess := editor.NewSession(store.New(categories...), layout.ThemeLight)
	return NewModel(sess), sess
}

func addContact(t *testing.T, sess *editor.Session, c models.Contact) models.Contact {
	t.Helper()
	sess.SetDraft(c)
	saved, err := sess.Submit()
	require.NoError(t, err)
	return saved
}

func TestNewContactFromKeys(t *testing.T) {
	m, sess := newTestModel(t, "Friends", "Work")

	m, _ = press(m, "right", "n")
	require.Equal(t, ViewEdit, m.viewMode)
	assert.Contains(t, m.View(), "NEW CONTACT")

	m, _ = press(m, "Ann", "tab", "555-0100", "enter")
	assert.Equal(t, ViewDiagram, m.viewMode)
	assert.NoError(t, m.err)

	contacts := sess.Store().Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ann", contacts[0].Name)
	assert.Equal(t, "555-0100", contacts[0].Phone)
	assert.Equal(t, "Work", contacts[0].Category)
	assert.Equal(t, models.PriorityMedium, contacts[0].Priority)
}

func TestSaveWithoutPhoneStaysInEditor(t *testing.T) {
	m, sess := newTestModel(t, "Work")

	m, _ = press(m, "n", "Ann", "enter")
	assert.Equal(t, ViewEdit, m.viewMode)
	assert.ErrorIs(t, m.err, models.ErrPhoneRequired)
	assert.Equal(t, 0, sess.Store().Len())
}

func TestSaveRejectsUnknownCategory(t *testing.T) {
	m, sess := newTestModel(t, "Work")

	m, _ = press(m, "n")
	m.formInputs[fieldName].SetValue("Ann")
	m.formInputs[fieldPhone].SetValue("1")
	m.formInputs[fieldCategory].SetValue("Nowhere")
	m, _ = press(m, "enter")

	assert.Equal(t, ViewEdit, m.viewMode)
	assert.Error(t, m.err)
	assert.Equal(t, 0, sess.Store().Len())
}

func TestEditUpdatesSelectedContact(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	ann := addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "e")
	require.Equal(t, ViewEdit, m.viewMode)
	assert.Contains(t, m.View(), "EDIT CONTACT")
	assert.Equal(t, "Ann", m.formInputs[fieldName].Value())

	m.formInputs[fieldPriority].SetValue("high")
	m, _ = press(m, "enter")
	assert.Equal(t, ViewDiagram, m.viewMode)

	got, ok := sess.Store().Get(ann.ID)
	require.True(t, ok)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, 1, sess.Store().Len())
}

func TestEscCancelsEdit(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "e", "esc")
	assert.Equal(t, ViewDiagram, m.viewMode)
	assert.False(t, sess.Form().Mode.IsEditing())
}

func TestQuitKeyTypesInEditor(t *testing.T) {
	m, _ := newTestModel(t, "Work")

	m, _ = press(m, "n", "q")
	assert.Equal(t, ViewEdit, m.viewMode)
	assert.Equal(t, "q", m.formInputs[fieldName].Value())

	m, _ = press(m, "esc")
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMoveCardBetweenColumns(t *testing.T) {
	m, sess := newTestModel(t, "Work", "Family")
	ann := addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "]")
	got, _ := sess.Store().Get(ann.ID)
	assert.Equal(t, "Family", got.Category)
	assert.Equal(t, 1, m.column)
	assert.Equal(t, 0, m.row)

	// no column past the last one
	m, _ = press(m, "]")
	got, _ = sess.Store().Get(ann.ID)
	assert.Equal(t, "Family", got.Category)

	_, _ = press(m, "[")
	got, _ = sess.Store().Get(ann.ID)
	assert.Equal(t, "Work", got.Category)
}

func TestSelectionFollowsPriorityOrder(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	addContact(t, sess, models.Contact{Name: "Low", Phone: "1", Category: "Work", Priority: models.PriorityLow})
	high := addContact(t, sess, models.Contact{Name: "High", Phone: "2", Category: "Work", Priority: models.PriorityHigh})

	node, ok := m.selectedNode()
	require.True(t, ok)
	assert.Equal(t, high.ID, node.ContactID)

	m, _ = press(m, "down", "down", "down")
	assert.Equal(t, 1, m.row)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "d")
	require.Equal(t, ViewConfirmDelete, m.viewMode)
	assert.Contains(t, m.View(), editor.PromptDeleteContact)

	m, _ = press(m, "n")
	assert.Equal(t, ViewDiagram, m.viewMode)
	assert.Equal(t, 1, sess.Store().Len())

	m, _ = press(m, "d", "y")
	assert.Equal(t, ViewDiagram, m.viewMode)
	assert.Equal(t, 0, sess.Store().Len())
	assert.Equal(t, "Contact deleted", m.status)
}

func TestDetailView(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Website: "ann.dev", Category: "Work"})

	m, _ = press(m, "enter")
	require.Equal(t, ViewDetail, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "https://ann.dev")

	m, _ = press(m, "esc")
	assert.Equal(t, ViewDiagram, m.viewMode)
}

func TestCopyPhone(t *testing.T) {
	var copied string
	sess := editor.NewSession(store.New("Work"), layout.ThemeLight)
	m := NewModel(sess, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "555-0100", Category: "Work"})

	m, _ = press(m, "y")
	assert.Equal(t, "555-0100", copied)
	assert.Equal(t, "Copied 555-0100", m.status)
}

func TestCopyPhoneError(t *testing.T) {
	sess := editor.NewSession(store.New("Work"), layout.ThemeLight)
	m := NewModel(sess, WithClipboard(func(string) error { return errors.New("no clipboard") }))
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "y")
	assert.Error(t, m.err)
}

func TestExportWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), snapshot.DefaultFileName)
	sess := editor.NewSession(store.New("Work"), layout.ThemeLight)
	m := NewModel(sess, WithExportPath(path))
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})

	m, _ = press(m, "x")
	require.NoError(t, m.err)

	snap, err := snapshot.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sess.Store().Snapshot(), snap)
}

func TestExportWithoutPath(t *testing.T) {
	m, _ := newTestModel(t, "Work")
	m, _ = press(m, "x")
	assert.Error(t, m.err)
}

func TestCategoryManagement(t *testing.T) {
	m, sess := newTestModel(t, "Work")

	m, _ = press(m, "c")
	require.Equal(t, ViewCategories, m.viewMode)

	m, _ = press(m, "a", "Pets", "enter")
	assert.True(t, sess.Store().HasCategory("Pets"))
	assert.Equal(t, 1, m.categoryCursor)

	m, _ = press(m, "r")
	m.categoryInput.SetValue("Animals")
	m, _ = press(m, "enter")
	assert.Equal(t, []string{"Work", "Animals"}, sess.Store().Categories())

	m, _ = press(m, "d")
	assert.Contains(t, m.View(), editor.PromptDeleteCategory)
	m, _ = press(m, "n")
	assert.Equal(t, []string{"Work", "Animals"}, sess.Store().Categories())

	m, _ = press(m, "d", "y")
	assert.Equal(t, []string{"Work"}, sess.Store().Categories())
	assert.Equal(t, 0, m.categoryCursor)

	m, _ = press(m, "esc")
	assert.Equal(t, ViewDiagram, m.viewMode)
}

func TestAddDuplicateCategoryFails(t *testing.T) {
	m, _ := newTestModel(t, "Work")
	m, _ = press(m, "c", "a", "Work", "enter")
	assert.Error(t, m.err)
}

func TestSearchFiltersAsYouType(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	addContact(t, sess, models.Contact{Name: "Ann", Phone: "1", Category: "Work"})
	addContact(t, sess, models.Contact{Name: "Bob", Phone: "2", Category: "Work"})

	m, _ = press(m, "/", "bo")
	assert.Equal(t, "bo", sess.Search())
	assert.Len(t, sess.Graph().Column("Work"), 1)

	m, _ = press(m, "enter")
	assert.Equal(t, ViewDiagram, m.viewMode)
	assert.Equal(t, "bo", sess.Search())

	_, _ = press(m, "/", "esc")
	assert.Equal(t, "", sess.Search())
}

func TestThemeAndAnalytics(t *testing.T) {
	m, sess := newTestModel(t, "Work")

	m, _ = press(m, "t")
	assert.Equal(t, layout.ThemeDark, sess.Theme())

	m, _ = press(m, "a")
	require.Equal(t, ViewAnalytics, m.viewMode)
	assert.Contains(t, m.View(), "ROLODEX DASHBOARD")

	m, _ = press(m, "a")
	assert.Equal(t, ViewDiagram, m.viewMode)
}

func TestReloadedMessageClampsSelection(t *testing.T) {
	m, sess := newTestModel(t, "Work", "Family")
	m.column = 1

	sess.Load(models.Snapshot{Categories: []string{"Work"}})
	next, _ := m.Update(ReloadedMsg{})
	assert.Equal(t, 0, next.(Model).column)
}

func TestNoticesSurfaceInStatus(t *testing.T) {
	m, sess := newTestModel(t, "Work")
	sess.Notices().Info("Reloaded contacts.json")

	next, _ := m.Update(ReloadedMsg{})
	assert.Equal(t, "Reloaded contacts.json", next.(Model).status)
	assert.Empty(t, sess.Notices().List())
}

func TestEmptyDiagramPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No categories")
}
