package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Style names accepted by ForStyle (tui.keymap in rolodex.yml).
const (
	StyleVim    = "vim"
	StyleEmacs  = "emacs"
	StyleArrows = "arrows"
)

// Base contains the keybindings of the list/form screen.
//
// List-only bindings (Up, Down, Top, Bottom, New, DeleteAlt, Quit, Help) are
// plain keys and are only consulted while the list has focus; the rest use
// modifiers so they also work while typing into the form.
type Base struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Record actions
	New       key.Binding
	Save      key.Binding
	Delete    key.Binding
	DeleteAlt key.Binding

	// Focus
	FocusNext key.Binding
	FocusPrev key.Binding
	Back      key.Binding

	// System
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultVim returns the default vim-style keymap
func DefaultVim() Base {
	return Base{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),

		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "delete"),
		),
		DeleteAlt: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),

		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// DefaultEmacs returns an emacs-style keymap
func DefaultEmacs() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("C-p", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("C-n", "down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("M-<", "first"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("M->", "last"),
	)
	b.Back = key.NewBinding(
		key.WithKeys("ctrl+g", "esc"),
		key.WithHelp("C-g", "back to list"),
	)
	return b
}

// DefaultArrows returns a simplified keymap using primarily arrow keys
func DefaultArrows() Base {
	b := DefaultVim()
	b.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "up"),
	)
	b.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "down"),
	)
	b.Top = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	)
	b.Bottom = key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	)
	b.DeleteAlt = key.NewBinding(
		key.WithKeys("delete"),
		key.WithHelp("del", "delete"),
	)
	return b
}

// ForStyle returns the preset for a tui.keymap value. Unknown styles fall
// back to vim.
func ForStyle(style string) Base {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleEmacs:
		return DefaultEmacs()
	case StyleArrows:
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// Load returns the preset for style with user overrides applied.
func Load(style string, overrides Overrides) Base {
	base := ForStyle(style)
	ApplyOverrides(&base, overrides)
	return base
}

// ShortHelp returns the bindings shown in the one-line help footer.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Save, k.Delete, k.FocusNext, k.Help, k.Quit}
}

// Sections returns grouped sections of all key bindings for the full help view.
func (k Base) Sections() []Section {
	return []Section{
		NavigationSection(k.Up, k.Down, k.Top, k.Bottom),
		ActionsSection(k.New, k.Save, k.Delete, k.DeleteAlt),
		ViewSection(k.FocusNext, k.FocusPrev, k.Back),
		SystemSection(k.Help, k.Quit),
	}
}
