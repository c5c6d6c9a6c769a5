// ABOUTME: Analytics dashboard view for TUI
// ABOUTME: Shows contacts per priority and per category as text bars
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/rolodex/viz"
)

func (m Model) renderAnalyticsView() string {
	var s strings.Builder
	s.WriteString(viz.RenderDashboard(m.session.Analytics()))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(strings.Join([]string{"a/Esc: Back to diagram", "q: Quit"}, " • ")))
	return s.String()
}

func (m Model) handleAnalyticsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "esc":
		m.viewMode = ViewDiagram
	}
	return m, nil
}
