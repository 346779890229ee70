// Package theme holds the lipgloss styles shared by the rolodex TUI and CLI output.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// Colors is the palette a theme is built from. lipgloss.TerminalColor allows
// a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the pre-configured styles.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style
	Title  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	// SelectedUnfocused marks the list cursor while the form has focus.
	SelectedUnfocused lipgloss.Style

	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableBorder lipgloss.Style

	// Pane and FocusedPane frame the list and the form.
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	Label       lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	Button         lipgloss.Style
	DangerButton   lipgloss.Style
	DisabledButton lipgloss.Style

	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

// adaptive pairs a light and a dark hex value.
func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": func() Colors {
		return Colors{
			Green:              adaptive("#4E7C5A", "#98BB6C"),
			Yellow:             adaptive("#A68A64", "#FF9E3B"),
			Red:                adaptive("#C34043", "#FF5D62"),
			Orange:             adaptive("#CC6B4E", "#FFA066"),
			Cyan:               adaptive("#5B8BBE", "#7E9CD8"),
			Violet:             adaptive("#674D7A", "#957FB8"),
			LightText:          adaptive("#2B2F42", "#DCD7BA"),
			MutedText:          adaptive("#6C7086", "#727169"),
			Border:             adaptive("#B5BDC5", "#363646"),
			SelectedBackground: adaptive("#E2E6F3", "#223249"),
		}
	},
	"gruvbox": func() Colors {
		return Colors{
			Green:              adaptive("#98971A", "#B8BB26"),
			Yellow:             adaptive("#D79921", "#FABD2F"),
			Red:                adaptive("#CC241D", "#FB4934"),
			Orange:             adaptive("#D65D0E", "#FE8019"),
			Cyan:               adaptive("#458588", "#83A598"),
			Violet:             adaptive("#8F3F71", "#B16286"),
			LightText:          adaptive("#3C3836", "#EBDBB2"),
			MutedText:          adaptive("#928374", "#BDAE93"),
			Border:             adaptive("#D5C4A1", "#504945"),
			SelectedBackground: adaptive("#F2E5BC", "#32302F"),
		}
	},
	// ANSI indexes only, so the user's terminal palette decides.
	"terminal": func() Colors {
		return Colors{
			Green:              lipgloss.Color("2"),
			Yellow:             lipgloss.Color("3"),
			Red:                lipgloss.Color("1"),
			Orange:             lipgloss.Color("208"),
			Cyan:               lipgloss.Color("6"),
			Violet:             lipgloss.Color("5"),
			LightText:          lipgloss.Color("7"),
			MutedText:          lipgloss.Color("8"),
			Border:             lipgloss.Color("8"),
			SelectedBackground: lipgloss.Color("8"),
		}
	},
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is the active theme. It starts from ROLODEX_THEME and is
// replaced by Use once configuration is loaded.
var DefaultTheme = NewThemeWithName(os.Getenv("ROLODEX_THEME"))

// Use makes the named theme the default. ROLODEX_THEME, when set, wins over
// name. Unknown names fall back to kanagawa.
func Use(name string) *Theme {
	if env := normalizeThemeName(os.Getenv("ROLODEX_THEME")); env != "" {
		name = env
	}
	DefaultTheme = NewThemeWithName(name)
	return DefaultTheme
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	key := resolveThemeName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

func newThemeFromColors(colors Colors, name string) *Theme {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Border).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colors.LightText).
		Background(colors.SelectedBackground)

	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Violet).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(colors.MutedText),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText).
			Bold(true),

		SelectedUnfocused: lipgloss.NewStyle().
			Underline(true),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Violet).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Foreground(colors.Border),

		Pane:        pane,
		FocusedPane: pane.BorderForeground(colors.Violet),

		Label: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Width(9),

		Input: lipgloss.NewStyle().Foreground(colors.LightText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Button:         button,
		DangerButton:   button.Foreground(colors.Red),
		DisabledButton: button.Foreground(colors.MutedText).Background(lipgloss.NoColor{}),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveThemeName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}
