package treetui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/personakit/personakit/pkg/jsonvalue"
)

// Model is the interactive tree viewer.
type Model struct {
	tree     *Tree
	rows     []Row
	title    string
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	cursor   int
	width    int
	height   int
	ready    bool
}

// NewModel creates a viewer over root. The root node starts expanded when
// expandRoot is set; every other node starts collapsed.
func NewModel(title string, root *jsonvalue.Value, expandRoot bool) *Model {
	m := &Model{
		tree:  NewTree(root, expandRoot),
		title: title,
		help:  help.New(),
		keys:  defaultKeyMap,
	}
	m.rows = m.tree.Rows()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		row := m.currentRow()
		if row != nil && row.Expandable() {
			m.tree.Toggle(row.Path)
			m.refresh()
		}

	case key.Matches(msg, m.keys.ExpandAll):
		m.tree.ExpandAll()
		m.refresh()

	case key.Matches(msg, m.keys.CollapseAll):
		m.tree.CollapseAll()
		m.refresh()
	}

	m.syncViewport()

	return m, nil
}

// VisibleRows returns the rows currently shown, in display order.
func (m *Model) VisibleRows() []Row {
	return m.rows
}

// ExpandAll expands every container node in the document.
func (m *Model) ExpandAll() {
	m.tree.ExpandAll()
	m.refresh()
}

func (m *Model) currentRow() *Row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}

	return &m.rows[m.cursor]
}

// refresh recomputes visible rows after an expansion change, clamping the
// cursor to the new row count.
func (m *Model) refresh() {
	m.rows = m.tree.Rows()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *Model) layout() {
	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.footerView())
	contentHeight := max(1, m.height-headerHeight-footerHeight)

	if !m.ready {
		m.viewport = viewport.New(m.width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = contentHeight
	}

	m.syncViewport()
}

// syncViewport re-renders the visible rows and scrolls so the cursor line
// stays in view.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.contentView())

	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *Model) headerView() string {
	return defaultStyles.title.Render(m.title)
}

func (m *Model) footerView() string {
	return defaultStyles.help.Render(m.help.View(m.keys))
}

func (m *Model) contentView() string {
	lines := make([]string, 0, len(m.rows))

	for i, row := range m.rows {
		prefix := "  "
		if i == m.cursor {
			prefix = defaultStyles.cursor.Render("❯") + " "
		}

		lines = append(lines, prefix+formatRow(row))
	}

	return strings.Join(lines, "\n")
}

// Run opens the interactive viewer and blocks until the user quits.
func Run(w io.Writer, m *Model) error {
	p := tea.NewProgram(m, tea.WithOutput(w))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("launch tui: %w", err)
	}

	return nil
}
