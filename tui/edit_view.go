// ABOUTME: Contact editor form for TUI
// ABOUTME: Text inputs feed the session draft; saving adds or updates depending on the form mode
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/store"
)

const (
	fieldName = iota
	fieldPhone
	fieldLocation
	fieldWebsite
	fieldCategory
	fieldPriority
	fieldCount
)

func (m Model) renderEditView() string {
	var s strings.Builder

	if m.session.Form().Mode.IsEditing() {
		s.WriteString(titleStyle.Render("EDIT CONTACT"))
	} else {
		s.WriteString(titleStyle.Render("NEW CONTACT"))
	}
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Categories: " + strings.Join(m.session.Store().Categories(), ", ")))
	s.WriteString("\n")
	if status := m.renderStatus(); status != "" {
		s.WriteString(status + "\n")
	}

	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) renderEditHelp() string {
	help := []string{
		"Tab: Next field",
		"Shift+Tab: Previous",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.CancelEdit()
		m.viewMode = ViewDiagram
		m.clampSelection()
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		saved, err := m.saveContact()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = "Saved " + saved.Name
		m.viewMode = ViewDiagram
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

// startEdit loads an existing contact into the form.
func (m *Model) startEdit(id uuid.UUID) {
	if err := m.session.BeginEdit(id); err != nil {
		m.err = err
		return
	}
	m.initFormInputs()
	m.viewMode = ViewEdit
}

// startNew opens the form for a new contact, defaulting to the selected column.
func (m *Model) startNew() {
	m.session.CancelEdit()
	draft := m.session.Form().Draft
	if headers := m.session.Graph().Headers(); m.column < len(headers) {
		draft.Category = headers[m.column].Category
	}
	m.session.SetDraft(draft)
	m.initFormInputs()
	m.viewMode = ViewEdit
}

func (m *Model) initFormInputs() {
	draft := m.session.Form().Draft

	inputs := make([]textinput.Model, fieldCount)
	fields := []struct {
		placeholder string
		limit       int
		value       string
	}{
		fieldName:     {"Name", 100, draft.Name},
		fieldPhone:    {"Phone", 30, draft.Phone},
		fieldLocation: {"Location", 100, draft.Location},
		fieldWebsite:  {"Website", 200, draft.Website},
		fieldCategory: {"Category", 50, draft.Category},
		fieldPriority: {"Priority (High/Medium/Low)", 10, string(draft.Priority)},
	}
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = f.limit
		inputs[i].SetValue(f.value)
	}

	m.formInputs = inputs
	m.focusIndex = 0
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m *Model) saveContact() (models.Contact, error) {
	category := strings.TrimSpace(m.formInputs[fieldCategory].Value())
	if category != "" && !m.session.Store().HasCategory(category) {
		return models.Contact{}, fmt.Errorf("unknown category %q", category)
	}

	saved, err := m.session.SubmitDraft(models.Contact{
		Name:     m.formInputs[fieldName].Value(),
		Phone:    m.formInputs[fieldPhone].Value(),
		Location: m.formInputs[fieldLocation].Value(),
		Website:  m.formInputs[fieldWebsite].Value(),
		Category: category,
		Priority: models.ParsePriority(m.formInputs[fieldPriority].Value()),
	})
	if errors.Is(err, store.ErrContactNotFound) {
		return models.Contact{}, fmt.Errorf("contact no longer exists, press enter to add it as new")
	}
	return saved, err
}
