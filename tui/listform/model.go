// Package listform is the interactive list/form screen: a record list, an
// edit form and an action bar, all driven by a records.Controller.
package listform

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/state"
	"github.com/grovetools/rolodex/tui/components"
	"github.com/grovetools/rolodex/tui/components/help"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/grovetools/rolodex/tui/theme"
	"github.com/sirupsen/logrus"
)

type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

const maxPendingWrites = 16

// Options configures a Model.
type Options struct {
	Title string
	Seed  []records.Record
	Keys  *keymap.Base

	// IDGenerator replaces the default UUID generator.
	IDGenerator records.IDGenerator
	// Persist is called with the full store after every change. Errors are
	// shown on the status line.
	Persist func([]records.Record) error
	// Changes delivers snapshot contents edited outside the TUI.
	Changes <-chan []records.Record
	Logger  *logrus.Entry
}

// Model is the Bubble Tea model for the list/form screen.
type Model struct {
	ctrl    *records.Controller
	list    *ListPane
	form    *FormPane
	actions *ActionBar

	keys    keymap.Base
	help    help.Model
	focus   focusArea
	changes <-chan []records.Record
	persist func([]records.Record) error
	logger  *logrus.Entry

	// pending holds snapshots persisted by this model that have not been
	// read back through changes yet, oldest first.
	pending [][]records.Record

	title     string
	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the panes and the controller and performs the initial sync.
func New(opts Options) *Model {
	keys := keymap.DefaultVim()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	title := opts.Title
	if title == "" {
		title = "Rolodex"
	}

	m := &Model{
		list:    NewListPane(),
		form:    NewFormPane(),
		actions: NewActionBar(keys),
		keys:    keys,
		help:    help.New(keys),
		changes: opts.Changes,
		persist: opts.Persist,
		logger:  opts.Logger,
		title:   title,
	}
	m.help.Title = title + " keys"
	m.help.Close = []key.Binding{keys.Help, keys.Quit, keys.Back}

	ctrlOpts := []records.Option{
		records.WithSeed(opts.Seed...),
		records.WithIDGenerator(opts.IDGenerator),
		records.WithLogger(opts.Logger),
	}
	if opts.Persist != nil {
		ctrlOpts = append(ctrlOpts, records.WithObserver(m.persistRecords))
	}
	m.ctrl = records.NewController(m.list, m.form, m.actions, ctrlOpts...)
	m.list.OnSelect = m.ctrl.SelectionChanged
	m.setFocus(focusList)

	return m
}

// Controller exposes the underlying controller.
func (m *Model) Controller() *records.Controller {
	return m.ctrl
}

// Init starts listening for snapshot changes.
func (m *Model) Init() tea.Cmd {
	return WaitForChange(m.changes)
}

// Update routes messages to the panes and key presses to controller operations.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case ReloadMsg:
		if m.ownWrite(msg.Records) {
			return m, WaitForChange(m.changes)
		}
		if !state.Equal(msg.Records, m.ctrl.Records()) {
			m.ctrl.Reload(msg.Records)
			m.setStatus(fmt.Sprintf("Reloaded %d records from disk", m.ctrl.Len()), false)
			if !m.form.Visible() {
				m.setFocus(focusList)
			}
		}
		return m, WaitForChange(m.changes)

	case statusMsg:
		m.setStatus(msg.text, msg.err)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.focus == focusForm {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// bindings that work from either pane
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.requestSave()
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		m.delete()
		return m, nil
	case key.Matches(msg, m.keys.FocusNext):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		return m, m.cycleFocus(-1)
	}

	if m.focus == focusForm {
		if key.Matches(msg, m.keys.Back) {
			m.setFocus(focusList)
			return m, nil
		}
		return m, m.form.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
	case key.Matches(msg, m.keys.Top):
		m.list.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.list.Bottom()
	case key.Matches(msg, m.keys.New):
		m.ctrl.RequestNew()
		m.setStatus("New record", false)
		return m, m.setFocus(focusForm)
	case key.Matches(msg, m.keys.DeleteAlt):
		m.delete()
	case msg.Type == tea.KeyEnter:
		if m.form.Visible() {
			return m, m.setFocus(focusForm)
		}
	}
	return m, nil
}

// requestSave runs the save operation. The action bar is only visible while a
// record is selected, which is the controller's precondition.
func (m *Model) requestSave() {
	if !m.actions.Visible() {
		return
	}
	m.ctrl.RequestSave()
	if rec, ok := m.ctrl.Record(m.ctrl.Selection()); ok {
		m.setStatus("Saved "+displayName(rec), false)
	}
}

func (m *Model) delete() {
	if !m.actions.Visible() {
		return
	}
	rec, _ := m.ctrl.Record(m.ctrl.Selection())
	m.ctrl.RequestDelete()
	m.setStatus("Deleted "+displayName(rec), false)
	if !m.form.Visible() {
		m.setFocus(focusList)
	}
}

// persistRecords is the controller observer that persists every change.
func (m *Model) persistRecords(recs []records.Record) {
	if m.persist == nil {
		return
	}
	if err := m.persist(recs); err != nil {
		if m.logger != nil {
			m.logger.WithError(err).Error("Failed to persist records")
		}
		m.setStatus(err.Error(), true)
		return
	}
	m.pending = append(m.pending, recs)
	if len(m.pending) > maxPendingWrites {
		m.pending = m.pending[len(m.pending)-maxPendingWrites:]
	}
}

// ownWrite reports whether recs is a snapshot this model persisted itself.
// The matching write and every older one are forgotten, since the file has
// moved past them.
func (m *Model) ownWrite(recs []records.Record) bool {
	for i, written := range m.pending {
		if state.Equal(written, recs) {
			m.pending = m.pending[i+1:]
			return true
		}
	}
	return false
}

// cycleFocus walks list -> name -> surname -> list (or backwards).
func (m *Model) cycleFocus(dir int) tea.Cmd {
	if !m.form.Visible() {
		m.setFocus(focusList)
		return nil
	}

	// positions: 0 = list, 1..fieldCount = form fields
	pos := 0
	if m.focus == focusForm {
		pos = m.form.Active() + 1
	}
	pos = (pos + dir + fieldCount + 1) % (fieldCount + 1)

	if pos == 0 {
		m.setFocus(focusList)
		return nil
	}
	m.focus = focusForm
	m.list.SetFocused(false)
	return m.form.Focus(pos - 1)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	if f == focusForm && !m.form.Visible() {
		f = focusList
	}
	m.focus = f
	m.list.SetFocused(f == focusList)
	if f == focusForm {
		return m.form.Focus(0)
	}
	m.form.Blur()
	return nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) layout() {
	// header, action bar, status and help lines plus pane borders
	listHeight := m.height - 9
	if listHeight < 1 {
		listHeight = 1
	}
	listWidth := m.width/3 - 4
	if listWidth < 16 {
		listWidth = 16
	}
	m.list.SetSize(listWidth, listHeight)
}

// View renders the whole screen.
func (m *Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}
	t := theme.DefaultTheme

	listStyle, formStyle := t.Pane, t.Pane
	if m.focus == focusList {
		listStyle = t.FocusedPane
	} else {
		formStyle = t.FocusedPane
	}

	listBox := listStyle.Render(m.list.View())
	if m.list.width > 0 {
		listBox = listStyle.Width(m.list.width).Render(m.list.View())
	}
	panes := listBox
	if m.form.Visible() {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, listBox, formStyle.Render(m.form.View()))
	}

	status := t.Muted.Render(fmt.Sprintf("%d records", m.ctrl.Len()))
	if m.status != "" {
		if m.statusErr {
			status = t.Error.Render(m.status)
		} else {
			status = t.Info.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(m.title),
		panes,
		m.actions.View(),
		components.RenderStatusBar(status, "", m.width),
		m.help.View(),
	)
}

func displayName(r records.Record) string {
	if s := r.Summary(); s != "" {
		return s
	}
	return "(unnamed)"
}
