// Package style holds the lipgloss styles used for terminal output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Template styles
var (
	TemplateNameStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	PopularMarkerStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)
)

// ForceColor makes every style emit ANSI color even when stdout is not a terminal
func ForceColor() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// DisableColor strips color and attributes from every style
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Indent prefixes every line of s with two spaces per level
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
