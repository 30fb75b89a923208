package treetui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/personakit/personakit/pkg/jsonvalue"
)

type styles struct {
	title     lipgloss.Style
	key       lipgloss.Style
	str       lipgloss.Style
	num       lipgloss.Style
	boolean   lipgloss.Style
	null      lipgloss.Style
	summary   lipgloss.Style
	indicator lipgloss.Style
	cursor    lipgloss.Style
	help      lipgloss.Style
}

var defaultStyles = styles{
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Margin(1, 2, 0),
	key:       lipgloss.NewStyle().Foreground(lipgloss.Color("211")),
	str:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	num:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	boolean:   lipgloss.NewStyle().Foreground(lipgloss.Color("105")),
	null:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	help:      lipgloss.NewStyle().Margin(1, 2, 0),
}

const indentWidth = 2

// formatRow renders one visible tree row, without the cursor column.
func formatRow(r Row) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", r.Depth*indentWidth))

	switch {
	case !r.Expandable():
		sb.WriteString("  ")
	case r.Expanded:
		sb.WriteString(defaultStyles.indicator.Render("▾") + " ")
	default:
		sb.WriteString(defaultStyles.indicator.Render("▸") + " ")
	}

	if r.Label != "" {
		sb.WriteString(defaultStyles.key.Render(r.Label))
		sb.WriteString(": ")
	}

	sb.WriteString(formatValue(r.Value))

	return sb.String()
}

func formatValue(v *jsonvalue.Value) string {
	switch v.Kind() {
	case jsonvalue.KindString:
		return defaultStyles.str.Render(strconv.Quote(v.Str()))
	case jsonvalue.KindNumber:
		return defaultStyles.num.Render(v.Num())
	case jsonvalue.KindBool:
		return defaultStyles.boolean.Render(v.Summary())
	case jsonvalue.KindNull:
		return defaultStyles.null.Render("null")
	default:
		return defaultStyles.summary.Render(v.Summary())
	}
}

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Quit        key.Binding
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "expand all"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "collapse all"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ExpandAll, k.CollapseAll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.ExpandAll, k.CollapseAll, k.Quit},
	}
}
