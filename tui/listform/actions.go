package listform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/grovetools/rolodex/tui/theme"
)

// ActionBar renders the New, Save and Delete controls. New is always
// available; Save and Delete only while a record is selected. It implements
// records.ActionTrigger.
type ActionBar struct {
	keys    keymap.Base
	visible bool
}

// NewActionBar returns a bar with Save and Delete hidden.
func NewActionBar(keys keymap.Base) *ActionBar {
	return &ActionBar{keys: keys}
}

// SetVisible shows or hides Save and Delete.
func (a *ActionBar) SetVisible(visible bool) {
	a.visible = visible
}

// Visible reports whether Save and Delete are available.
func (a *ActionBar) Visible() bool {
	return a.visible
}

// View renders the buttons that are currently available.
func (a *ActionBar) View() string {
	t := theme.DefaultTheme

	buttons := []string{button(t.Button, a.keys.New, "New")}
	if a.visible {
		buttons = append(buttons,
			button(t.Button, a.keys.Save, "Save"),
			button(t.DangerButton, a.keys.Delete, "Delete"),
		)
	}
	return strings.Join(buttons, " ")
}

func button(style lipgloss.Style, b key.Binding, label string) string {
	return style.Render(label + " " + b.Help().Key)
}
