// Package components holds small rendering helpers shared by the rolodex views.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/tui/theme"
)

// RenderHeader creates a consistent header for TUIs
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(title)
	if len(subtitle) > 0 && subtitle[0] != "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, t.Muted.Render(subtitle[0]))
	}
	return header
}

// RenderStatusBar lays out left and right content on one line of the given
// width. Right content is dropped when both do not fit.
func RenderStatusBar(left, right string, width int) string {
	t := theme.DefaultTheme

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if right != "" && gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}

	return lipgloss.NewStyle().
		MaxWidth(width).
		Foreground(t.Colors.LightText).
		Render(line)
}
