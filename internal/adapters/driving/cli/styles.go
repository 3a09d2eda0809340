package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Palette for command output.
var (
	colourPrimary   = lipgloss.Color("#7C3AED")
	colourSecondary = lipgloss.Color("#06B6D4")
	colourMuted     = lipgloss.Color("#6C7086")
	colourSuccess   = lipgloss.Color("#A6E3A1")
	colourWarning   = lipgloss.Color("#F9E2AF")
	colourError     = lipgloss.Color("#F38BA8")
)

// Output styles. lipgloss drops colours when stdout is not a terminal.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colourSecondary)
	mutedStyle    = lipgloss.NewStyle().Foreground(colourMuted)
	successStyle  = lipgloss.NewStyle().Foreground(colourSuccess)
	warningStyle  = lipgloss.NewStyle().Foreground(colourWarning)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colourError)
	labelStyle    = lipgloss.NewStyle().Width(14).Foreground(colourMuted)
	priorityStyle = map[string]lipgloss.Style{
		"High": lipgloss.NewStyle().Bold(true).Foreground(colourError),
		"Med":  lipgloss.NewStyle().Foreground(colourWarning),
		"Low":  lipgloss.NewStyle().Foreground(colourMuted),
	}
)

// field renders an aligned "label value" line.
func field(label string, value any) string {
	return labelStyle.Render(label) + " " + fmt.Sprint(value)
}

// priority renders a task priority badge.
func priority(p string) string {
	style, ok := priorityStyle[p]
	if !ok {
		style = mutedStyle
	}
	return style.Render("[" + p + "]")
}
