// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms contact and category deletion with a centered dialog
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/rolodex/editor"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

// renderConfirmDialog centers a yes/no dialog around prompt and subject.
func (m Model) renderConfirmDialog(prompt, subject string) string {
	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		prompt,
		"\n"+subject+"\n",
		warning,
		"",
		buttons,
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		confirmBoxStyle.Render(content),
	)
}

func (m Model) renderConfirmDeleteView() string {
	name := "(missing)"
	if contact, ok := m.session.Store().Get(m.selectedID); ok {
		name = contact.Name
	}
	return m.renderConfirmDialog(editor.PromptDeleteContact, "CONTACT: "+name)
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		deleted, err := m.session.DeleteContact(m.selectedID, editor.Always)
		if err != nil {
			m.err = fmt.Errorf("failed to delete contact: %w", err)
		} else if deleted {
			m.status = "Contact deleted"
		}
		m.viewMode = ViewDiagram
		m.clampSelection()
	case "n", "N", "esc":
		m.viewMode = ViewDiagram
	}

	return m, nil
}
