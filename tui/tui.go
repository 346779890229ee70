// Package tui holds the terminal front end of rolodex.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for the TUI. It checks for
// environment variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) and sets the lipgloss color profile when present, so styling
// stays consistent when output is captured or recorded.
//
// Call it at the start of any command that renders styled output.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
