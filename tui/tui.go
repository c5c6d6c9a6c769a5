// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen contact diagram with editing, categories, search, and analytics
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/harperreed/rolodex/editor"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewDiagram ViewMode = iota
	ViewDetail
	ViewEdit
	ViewAnalytics
	ViewConfirmDelete
	ViewCategories
	ViewSearch
)

// ReloadedMsg tells the model the session was replaced from outside, for
// example by the snapshot file watcher.
type ReloadedMsg struct{}

// Model is the main bubbletea model
type Model struct {
	session    *editor.Session
	exportPath string
	copyText   func(string) error
	viewMode   ViewMode

	// Diagram selection
	column int
	row    int

	// Detail and delete target
	selectedID uuid.UUID

	// Edit view state
	formInputs []textinput.Model
	focusIndex int

	// Categories view state
	categoryCursor  int
	categoryInput   textinput.Model
	categoryAction  categoryAction
	confirmCategory bool

	// Search view state
	searchInput textinput.Model

	// UI state
	status string
	err    error
	width  int
	height int
}

type Option func(*Model)

// WithExportPath sets where the x key writes the snapshot.
func WithExportPath(path string) Option {
	return func(m *Model) { m.exportPath = path }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// NewModel creates a new TUI model
func NewModel(session *editor.Session, opts ...Option) Model {
	m := Model{
		session:  session,
		copyText: clipboard.WriteAll,
		viewMode: ViewDiagram,
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		model tea.Model = m
		cmd   tea.Cmd
	)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd = m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		model = m
	case ReloadedMsg:
		m.clampSelection()
		model = m
	}

	next := model.(Model)
	next.collectNotices()
	return next, cmd
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewDiagram:
		return m.renderDiagramView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewAnalytics:
		return m.renderAnalyticsView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	case ViewCategories:
		return m.renderCategoriesView()
	case ViewSearch:
		return m.renderSearchView()
	}
	return ""
}

// typing reports whether keystrokes go to a text input.
func (m Model) typing() bool {
	return m.viewMode == ViewEdit || m.viewMode == ViewSearch ||
		(m.viewMode == ViewCategories && m.categoryAction != categoryNone)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !m.typing() {
			return m, tea.Quit
		}
	}

	m.err = nil

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewDiagram:
		return m.handleDiagramKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewAnalytics:
		return m.handleAnalyticsKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ViewCategories:
		return m.handleCategoriesKeys(msg)
	case ViewSearch:
		return m.handleSearchKeys(msg)
	}

	return m, nil
}

// collectNotices moves session notices into the status line.
func (m *Model) collectNotices() {
	for _, n := range m.session.Notices().Drain() {
		m.status = n.Message
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}
