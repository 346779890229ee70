package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/stretchr/testify/assert"
)

func TestShortView(t *testing.T) {
	m := New(keymap.DefaultVim())
	view := m.View()

	assert.Contains(t, view, "new")
	assert.Contains(t, view, "save")
	assert.Contains(t, view, "quit")
}

func TestShortViewSkipsDisabled(t *testing.T) {
	km := keymap.DefaultVim()
	km.Save.SetEnabled(false)
	m := New(km)

	assert.NotContains(t, m.View(), "save")
}

func TestToggleOverlay(t *testing.T) {
	m := New(keymap.DefaultVim())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Toggle()
	assert.True(t, m.ShowAll)
	view := m.View()
	assert.Contains(t, view, keymap.SectionNavigation)
	assert.Contains(t, view, keymap.SectionActions)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowAll)
}

func TestKeysIgnoredWhenClosed(t *testing.T) {
	m := New(keymap.DefaultVim())
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Nil(t, cmd)
	assert.False(t, m.ShowAll)
}
