package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/personakit/personakit/pkg/charschema"
)

var (
	okPanelStyle = lipgloss.NewStyle().Margin(1, 2).Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42"))
	errPanelStyle = lipgloss.NewStyle().Margin(1, 2).Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196"))
	fieldPathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("211")).Bold(true)
	fieldLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Width(14)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	checkMark       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
	errorMark       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗")
)

// renderSummary renders the success panel for one validated file: selected
// summary fields of the character.
func renderSummary(path string, cfg *charschema.CharacterConfig, pretty bool) string {
	fields := []struct {
		label string
		value string
	}{
		{"name", cfg.Name},
		{"provider", cfg.ModelProvider},
		{"clients", strings.Join(cfg.Clients, ", ")},
		{"plugins", strings.Join(cfg.Plugins, ", ")},
		{"adjectives", strings.Join(cfg.Adjectives, ", ")},
		{"topics", strings.Join(cfg.Topics, ", ")},
		{"bio", strings.Join(cfg.Bio, " · ")},
	}

	if !pretty {
		lines := []string{fmt.Sprintf("✓ %s is a valid character", path)}
		for _, f := range fields {
			if f.value == "" {
				continue
			}

			lines = append(lines, fmt.Sprintf("  %s: %s", f.label, f.value))
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{fmt.Sprintf("%s %s is a valid character", checkMark, fieldPathStyle.Render(path)), ""}

	for _, f := range fields {
		if f.value == "" {
			continue
		}

		lines = append(lines, fieldLabelStyle.Render(f.label)+f.value)
	}

	return okPanelStyle.Render(strings.Join(lines, "\n"))
}

// renderErrorReport renders the error panel for one invalid file:
// path / message / suggestion triples plus any near-miss key hints.
func renderErrorReport(path string, items []charschema.ReportItem, hints []string, pretty bool) string {
	if !pretty {
		lines := []string{fmt.Sprintf("✗ %s: %d problem(s)", path, len(items))}

		for _, item := range items {
			line := fmt.Sprintf("  %s: %s", item.Path, item.Message)
			if item.Suggestion != "" {
				line += fmt.Sprintf(" (%s)", item.Suggestion)
			}

			lines = append(lines, line)
		}

		for _, hint := range hints {
			lines = append(lines, "  hint: "+hint)
		}

		return strings.Join(lines, "\n")
	}

	lines := []string{fmt.Sprintf("%s %s: %d problem(s)", errorMark, fieldPathStyle.Render(path), len(items)), ""}

	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s — %s", fieldPathStyle.Render(item.Path), item.Message))
		if item.Suggestion != "" {
			lines = append(lines, suggestionStyle.Render("  ↳ "+item.Suggestion))
		}
	}

	for _, hint := range hints {
		lines = append(lines, suggestionStyle.Render("  ↳ "+hint))
	}

	return errPanelStyle.Render(strings.Join(lines, "\n"))
}
