// Package ui provides terminal styling for fab CLI output.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorFail = lipgloss.AdaptiveColor{Light: "#d1383d", Dark: "#f07178"}
	colorWarn = lipgloss.AdaptiveColor{Light: "#cf8700", Dark: "#ffb454"}
	colorHint = lipgloss.AdaptiveColor{Light: "#586069", Dark: "#6c7680"}
)

var (
	FailStyle = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
	WarnStyle = lipgloss.NewStyle().Foreground(colorWarn)
	HintStyle = lipgloss.NewStyle().Foreground(colorHint)
)

// Errorf renders an error line for stderr.
func Errorf(format string, args ...any) string {
	return FailStyle.Render("error:") + " " + fmt.Sprintf(format, args...)
}

// Hint renders a muted follow-up suggestion.
func Hint(s string) string {
	return HintStyle.Render("hint: " + s)
}
