// ABOUTME: Diagram view rendering category columns with priority-colored cards
// ABOUTME: Handles selection, moving cards between categories, and view switching keys
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/harperreed/rolodex/viz"
)

const columnWidth = 24

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(columnWidth)

	selectedCardStyle = cardStyle.
				Border(lipgloss.ThickBorder())

	headerBoxStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Width(columnWidth + 2).
			Align(lipgloss.Center)
)

// priorityColor maps a priority onto the same palette the image renderers use.
func priorityColor(p models.Priority) lipgloss.Color {
	return lipgloss.Color(viz.Hex(viz.PriorityColor(p)))
}

func headerStyleFor(theme layout.Theme) lipgloss.Style {
	palette := viz.PaletteFor(theme)
	return headerBoxStyle.
		Background(lipgloss.Color(viz.Hex(palette.HeaderFill))).
		Foreground(lipgloss.Color(viz.Hex(palette.HeaderText)))
}

func (m Model) renderDiagramView() string {
	var s strings.Builder

	title := "📇 ROLODEX"
	if q := m.session.Search(); q != "" {
		title += fmt.Sprintf("  (search: %q)", q)
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n")

	g := m.session.Graph()
	headers := g.Headers()
	if len(headers) == 0 {
		s.WriteString("No categories. Press c to add one.\n")
	} else {
		columns := make([]string, 0, len(headers))
		for i, h := range headers {
			columns = append(columns, m.renderColumn(g, h, i))
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
		s.WriteString("\n")
	}

	if status := m.renderStatus(); status != "" {
		s.WriteString("\n" + status + "\n")
	}
	s.WriteString(m.renderDiagramHelp())
	return s.String()
}

func (m Model) renderColumn(g layout.Graph, header layout.Node, index int) string {
	parts := []string{headerStyleFor(g.Theme).Render(header.Label)}

	cards := g.Column(header.Category)
	if len(cards) == 0 {
		parts = append(parts, helpStyle.Width(columnWidth+2).Render("  (empty)"))
	}
	for row, node := range cards {
		contact, ok := m.session.Store().Get(node.ContactID)
		if !ok {
			continue
		}
		style := cardStyle
		if index == m.column && row == m.row {
			style = selectedCardStyle
		}
		style = style.BorderForeground(priorityColor(node.Priority))

		body := lipgloss.NewStyle().Bold(true).Render(contact.Name) + "\n" +
			"📞 " + contact.Phone
		if contact.Location != "" {
			body += "\n📍 " + contact.Location
		}
		parts = append(parts, style.Render(body))
	}

	return lipgloss.NewStyle().MarginRight(2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderDiagramHelp() string {
	help := []string{
		"←/→: column",
		"↑/↓: card",
		"[/]: move",
		"enter: details",
		"e: edit",
		"n: new",
		"d: delete",
		"c: categories",
		"/: search",
		"t: theme",
		"a: analytics",
		"y: copy phone",
		"x: export",
		"q: quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDiagramKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.column > 0 {
			m.column--
		}
		m.clampSelection()
	case "right", "l":
		m.column++
		m.clampSelection()
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		m.row++
		m.clampSelection()
	case "[":
		m.moveSelected(-1)
	case "]":
		m.moveSelected(1)
	case "enter":
		if node, ok := m.selectedNode(); ok {
			m.selectedID = node.ContactID
			m.viewMode = ViewDetail
		}
	case "e":
		if node, ok := m.selectedNode(); ok {
			m.startEdit(node.ContactID)
		}
	case "n":
		m.startNew()
	case "d":
		if node, ok := m.selectedNode(); ok {
			m.selectedID = node.ContactID
			m.viewMode = ViewConfirmDelete
		}
	case "c":
		m.categoryCursor = 0
		m.viewMode = ViewCategories
	case "/":
		m.startSearch()
	case "t":
		theme := m.session.ToggleTheme()
		m.status = "Theme: " + theme.String()
	case "a":
		m.viewMode = ViewAnalytics
	case "y":
		if node, ok := m.selectedNode(); ok {
			m.copyPhone(node.ContactID)
		}
	case "x":
		m.export()
	}
	return m, nil
}

// selectedNode returns the card under the cursor.
func (m Model) selectedNode() (layout.Node, bool) {
	g := m.session.Graph()
	headers := g.Headers()
	if m.column < 0 || m.column >= len(headers) {
		return layout.Node{}, false
	}
	cards := g.Column(headers[m.column].Category)
	if m.row < 0 || m.row >= len(cards) {
		return layout.Node{}, false
	}
	return cards[m.row], true
}

// clampSelection keeps the cursor inside the current graph.
func (m *Model) clampSelection() {
	g := m.session.Graph()
	headers := g.Headers()
	if m.column >= len(headers) {
		m.column = len(headers) - 1
	}
	if m.column < 0 {
		m.column = 0
	}
	rows := 0
	if len(headers) > 0 {
		rows = len(g.Column(headers[m.column].Category))
	}
	if m.row >= rows {
		m.row = rows - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

// moveSelected re-categorizes the selected card into the neighboring column
// and keeps the cursor on it.
func (m *Model) moveSelected(delta int) {
	node, ok := m.selectedNode()
	if !ok {
		return
	}
	categories := m.session.Store().Categories()
	target := m.column + delta
	if target < 0 || target >= len(categories) {
		return
	}
	if _, err := m.session.MoveContact(node.ContactID, categories[target]); err != nil {
		m.err = err
		return
	}

	m.column = target
	m.row = 0
	for i, n := range m.session.Graph().Column(categories[target]) {
		if n.ContactID == node.ContactID {
			m.row = i
			break
		}
	}
	m.status = fmt.Sprintf("Moved %s to %s", node.Label, categories[target])
}

func (m *Model) copyPhone(id uuid.UUID) {
	contact, ok := m.session.Store().Get(id)
	if !ok {
		return
	}
	if err := m.copyText(contact.Phone); err != nil {
		m.err = fmt.Errorf("failed to copy phone: %w", err)
		return
	}
	m.status = "Copied " + contact.Phone
}

func (m *Model) export() {
	if m.exportPath == "" {
		m.err = fmt.Errorf("no export path configured")
		return
	}
	if err := snapshot.WriteFile(m.exportPath, m.session.Store().Snapshot()); err != nil {
		m.err = err
		return
	}
	m.status = "Exported to " + filepath.Base(m.exportPath)
}
