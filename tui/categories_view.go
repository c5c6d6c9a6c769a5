// ABOUTME: Category management view for TUI
// ABOUTME: Adds, renames, and deletes categories with a confirmation step for deletes
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/rolodex/editor"
)

type categoryAction int

const (
	categoryNone categoryAction = iota
	categoryAdd
	categoryRename
)

var selectedRowStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Bold(true)

func (m Model) renderCategoriesView() string {
	categories := m.session.Store().Categories()

	if m.confirmCategory && m.categoryCursor < len(categories) {
		return m.renderConfirmDialog(editor.PromptDeleteCategory, "CATEGORY: "+categories[m.categoryCursor])
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("CATEGORIES"))
	s.WriteString("\n")

	if len(categories) == 0 {
		s.WriteString("No categories yet.\n")
	}
	counts := make(map[string]int)
	for _, c := range m.session.Analytics().ByCategory {
		counts[c.Name] = c.Value
	}
	for i, name := range categories {
		line := fmt.Sprintf("%-20s %3d", name, counts[name])
		if i == m.categoryCursor {
			s.WriteString(selectedRowStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	switch m.categoryAction {
	case categoryAdd:
		s.WriteString("\nNew category: " + m.categoryInput.View() + "\n")
	case categoryRename:
		s.WriteString("\nRename to: " + m.categoryInput.View() + "\n")
	}

	if status := m.renderStatus(); status != "" {
		s.WriteString("\n" + status + "\n")
	}
	s.WriteString(m.renderCategoriesHelp())
	return s.String()
}

func (m Model) renderCategoriesHelp() string {
	help := []string{"↑/↓: Navigate", "a: Add", "r: Rename", "d: Delete", "Esc: Back"}
	if m.categoryAction != categoryNone {
		help = []string{"Enter: Apply", "Esc: Cancel"}
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleCategoriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.session.Store().Categories()

	if m.confirmCategory {
		switch msg.String() {
		case "y", "Y":
			if m.categoryCursor < len(categories) {
				name := categories[m.categoryCursor]
				if m.session.DeleteCategory(name, editor.Always) {
					m.status = "Deleted category " + name
				}
			}
			m.confirmCategory = false
			m.clampCategoryCursor()
		case "n", "N", "esc":
			m.confirmCategory = false
		}
		return m, nil
	}

	if m.categoryAction != categoryNone {
		return m.handleCategoryInput(msg, categories)
	}

	switch msg.String() {
	case "esc":
		m.viewMode = ViewDiagram
		m.clampSelection()
	case "up", "k":
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}
	case "down", "j":
		m.categoryCursor++
		m.clampCategoryCursor()
	case "a":
		m.beginCategoryInput(categoryAdd, "")
	case "r":
		if m.categoryCursor < len(categories) {
			m.beginCategoryInput(categoryRename, categories[m.categoryCursor])
		}
	case "d":
		if m.categoryCursor < len(categories) {
			m.confirmCategory = true
		}
	}
	return m, nil
}

func (m Model) handleCategoryInput(msg tea.KeyMsg, categories []string) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.categoryAction = categoryNone
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.categoryInput.Value())
		switch m.categoryAction {
		case categoryAdd:
			if m.session.AddCategory(name) {
				m.status = "Added category " + name
				m.categoryCursor = len(categories)
			} else {
				m.err = fmt.Errorf("category %q is blank or already exists", name)
			}
		case categoryRename:
			old := categories[m.categoryCursor]
			if m.session.RenameCategory(old, name) {
				m.status = fmt.Sprintf("Renamed %s to %s", old, name)
			} else {
				m.err = fmt.Errorf("could not rename %s to %q", old, name)
			}
		}
		m.categoryAction = categoryNone
		return m, nil
	}

	var cmd tea.Cmd
	m.categoryInput, cmd = m.categoryInput.Update(msg)
	return m, cmd
}

func (m *Model) beginCategoryInput(action categoryAction, value string) {
	m.categoryInput = textinput.New()
	m.categoryInput.Placeholder = "Category name"
	m.categoryInput.CharLimit = 50
	m.categoryInput.SetValue(value)
	m.categoryInput.Focus()
	m.categoryAction = action
}

func (m *Model) clampCategoryCursor() {
	n := len(m.session.Store().Categories())
	if m.categoryCursor >= n {
		m.categoryCursor = n - 1
	}
	if m.categoryCursor < 0 {
		m.categoryCursor = 0
	}
}
