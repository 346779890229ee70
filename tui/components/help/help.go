package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/grovetools/rolodex/tui/theme"
)

// Keys is what the help component needs from a keymap.
type Keys interface {
	keymap.SectionedKeyMap
	ShortHelp() []key.Binding
}

// Model is an embeddable help component: a one-line footer, or a centered
// overlay listing every section when ShowAll is set.
type Model struct {
	Keys    Keys
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	// Close keys dismiss the overlay. Scrolling keys go to the viewport.
	Close []key.Binding

	viewport viewport.Model
}

// New creates a help model for keys.
func New(keys Keys) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		Close:    []key.Binding{key.NewBinding(key.WithKeys("?", "q", "esc"))},
		viewport: vp,
	}
}

// Update handles resize and, while the overlay is open, its keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		for _, b := range m.Close {
			if key.Matches(msg, b) {
				m.Toggle()
				return m, nil
			}
		}
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the footer or the overlay.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()
		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}
			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	if m.Keys == nil {
		return ""
	}
	return m.viewShort(m.Keys.ShortHelp())
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s %s",
			m.Theme.Highlight.Render(h.Key),
			m.Theme.Muted.Render(h.Desc),
		))
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// setViewportContent renders every section and sizes the viewport around it.
func (m *Model) setViewportContent() {
	const verticalMargin = 4

	var blocks []string
	if m.Keys != nil {
		for _, section := range m.Keys.Sections() {
			if block := m.renderSection(section); block != "" {
				blocks = append(blocks, block)
			}
		}
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if m.Width > 0 && lipgloss.Width(body) > m.Width-4 {
		body = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center).
		Width(lipgloss.Width(body))

	content := lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), body)
	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
	if m.viewport.Height < 1 {
		m.viewport.Height = lipgloss.Height(content)
	}
}

// renderSection renders one section as a bordered two-column table.
func (m *Model) renderSection(section keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Cyan)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rows := 0
	for _, binding := range section.Enabled() {
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		table = table.Row(keyStyle.Render(h.Key), m.Theme.Muted.Italic(true).Render(h.Desc))
		rows++
	}
	if rows == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginRight(1)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(section.Name), table.String()))
}

// Toggle switches between the footer and the overlay. Opening the overlay
// re-renders it and scrolls to the top.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
