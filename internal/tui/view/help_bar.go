package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/keymap"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// RenderHelpBar renders the key hints of the current mode, wrapped to
// width.
func RenderHelpBar(s *styles.Styles, entries []keymap.HelpEntry, width int) string {
	var lines []string
	var line string
	for _, e := range entries {
		item := s.HelpKey.Render("["+e.Keys+"]") + " " + s.HelpDesc.Render(e.Description)
		switch {
		case line == "":
			line = item
		case width > 0 && lipgloss.Width(line)+2+lipgloss.Width(item) > width:
			lines = append(lines, line)
			line = item
		default:
			line += "  " + item
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return s.HelpBar.Render(strings.Join(lines, "\n"))
}

// RenderStatus renders a transient info message.
func RenderStatus(s *styles.Styles, msg string) string {
	if msg == "" {
		return ""
	}
	return s.Status.Render(msg)
}

// RenderErrorStatus renders a failed action in the color of its severity.
func RenderErrorStatus(s *styles.Styles, msg string, sev errors.Severity) string {
	if msg == "" {
		return ""
	}
	return StatusStyle(s, sev).Render(msg)
}

// StatusStyle maps an error severity to a status line style. Incomplete
// forms and rejected actions are warnings; anything else is an error.
func StatusStyle(s *styles.Styles, sev errors.Severity) lipgloss.Style {
	if sev == errors.SeverityError {
		return s.Error
	}
	return s.Warning
}
