// ABOUTME: Contact detail view for TUI
// ABOUTME: Shows the inspected contact with website and map links
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/rolodex/layout"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CONTACT DETAILS"))
	s.WriteString("\n\n")

	detail, ok := m.session.Inspect(layout.ContactNodeID(m.selectedID))
	if !ok {
		s.WriteString("Contact is no longer on the diagram.\n")
	} else {
		c := detail.Contact
		s.WriteString(m.renderField("Name", c.Name))
		s.WriteString(m.renderField("Phone", c.Phone))
		s.WriteString(m.renderField("Category", c.Category))
		s.WriteString(fmt.Sprintf("%s %s\n",
			fieldLabelStyle.Render("Priority:"),
			lipgloss.NewStyle().Foreground(priorityColor(c.Priority)).Bold(true).Render(string(c.Priority))))
		s.WriteString(m.renderField("Location", c.Location))
		s.WriteString(m.renderField("Website", detail.WebsiteURL))
		if detail.MapURL != "" {
			s.WriteString(m.renderField("Map", detail.MapURL))
		}
	}

	if status := m.renderStatus(); status != "" {
		s.WriteString("\n" + status + "\n")
	}
	s.WriteString("\n")
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value))
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"e: Edit",
		"d: Delete",
		"y: Copy phone",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewDiagram
		m.clampSelection()
	case "e":
		m.startEdit(m.selectedID)
	case "d":
		m.viewMode = ViewConfirmDelete
	case "y":
		m.copyPhone(m.selectedID)
	}

	return m, nil
}
