// ABOUTME: Search prompt for TUI
// ABOUTME: Filters diagram cards by name as the query is typed
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) startSearch() {
	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search by name"
	m.searchInput.CharLimit = 100
	m.searchInput.SetValue(m.session.Search())
	m.searchInput.Focus()
	m.viewMode = ViewSearch
}

func (m Model) renderSearchView() string {
	var s strings.Builder
	s.WriteString(m.renderDiagramView())
	s.WriteString("\n\n")
	s.WriteString("Search: " + m.searchInput.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(strings.Join([]string{"Enter: Done", "Esc: Clear"}, " • ")))
	return s.String()
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.viewMode = ViewDiagram
		return m, nil
	case "esc":
		m.session.SetSearch("")
		m.viewMode = ViewDiagram
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetSearch(m.searchInput.Value())
	m.row = 0
	m.clampSelection()
	return m, cmd
}
