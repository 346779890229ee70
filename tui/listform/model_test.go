package listform

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func newTestModel(t *testing.T, seed ...records.Record) (*Model, *[][]records.Record) {
	t.Helper()
	var saved [][]records.Record
	m := New(Options{
		Seed:        seed,
		IDGenerator: records.Sequence("id"),
		Persist: func(recs []records.Record) error {
			saved = append(saved, recs)
			return nil
		},
	})
	return m, &saved
}

func disney() []records.Record {
	return []records.Record{
		{ID: "A", Name: "Mickey", Surname: "Mouse"},
		{ID: "B", Name: "Walt", Surname: "Disney"},
	}
}

func TestInitialSyncSelectsFirst(t *testing.T) {
	m, saved := newTestModel(t, disney()...)

	assert.Equal(t, records.ID("A"), m.Controller().Selection())
	assert.Equal(t, records.ID("A"), m.list.Selected())
	assert.True(t, m.form.Visible())
	assert.True(t, m.actions.Visible())
	assert.Equal(t, "Mickey", m.form.Fields().Name)
	assert.Empty(t, *saved, "initial sync is not a change")
}

func TestInitialSyncEmpty(t *testing.T) {
	m, _ := newTestModel(t)

	assert.True(t, m.Controller().Selection().IsNone())
	assert.False(t, m.form.Visible())
	assert.False(t, m.actions.Visible())
	assert.NotContains(t, m.actions.View(), "Save")
	assert.Contains(t, m.View(), "No records")
}

func TestNavigationUpdatesForm(t *testing.T) {
	m, _ := newTestModel(t, disney()...)

	send(m, runes("j"))
	assert.Equal(t, records.ID("B"), m.Controller().Selection())
	assert.Equal(t, "Walt", m.form.Fields().Name)

	send(m, runes("k"))
	assert.Equal(t, records.ID("A"), m.Controller().Selection())
	assert.Equal(t, "Mickey", m.form.Fields().Name)
}

func TestCreateEditSave(t *testing.T) {
	m, saved := newTestModel(t, disney()...)

	send(m, runes("n"))
	require.Equal(t, records.ID("id-1"), m.Controller().Selection())
	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, records.Fields{}, m.form.Fields())
	assert.Len(t, *saved, 1)

	send(m, runes("Donald"), tea.KeyMsg{Type: tea.KeyTab}, runes("Duck"), tea.KeyMsg{Type: tea.KeyCtrlS})

	rec, ok := m.Controller().Record("id-1")
	require.True(t, ok)
	assert.Equal(t, "Donald Duck", rec.Summary())
	assert.Equal(t, []records.ID{"A", "B", "id-1"}, ids(m.Controller().Records()))
	assert.Len(t, *saved, 2)
	assert.Contains(t, m.View(), "Saved Donald Duck")
}

func TestUnsavedEditsDiscardedOnSelectionChange(t *testing.T) {
	m, _ := newTestModel(t, disney()...)

	send(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("ey"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Mickeyey", m.form.Fields().Name)

	send(m, runes("j"), runes("k"))
	assert.Equal(t, "Mickey", m.form.Fields().Name)
	rec, _ := m.Controller().Record("A")
	assert.Equal(t, "Mickey", rec.Name)
}

func TestDeleteSelectsFirst(t *testing.T) {
	m, saved := newTestModel(t, disney()...)

	send(m, runes("j"), runes("D"))
	assert.Equal(t, records.ID("A"), m.Controller().Selection())
	assert.Equal(t, 1, m.Controller().Len())
	assert.Len(t, *saved, 1)

	send(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, m.Controller().Selection().IsNone())
	assert.False(t, m.form.Visible())
	assert.False(t, m.actions.Visible())
	assert.Equal(t, focusList, m.focus)
}

func TestSaveAndDeleteIgnoredWithoutSelection(t *testing.T) {
	m, saved := newTestModel(t)

	assert.NotPanics(t, func() {
		send(m, tea.KeyMsg{Type: tea.KeyCtrlS}, tea.KeyMsg{Type: tea.KeyCtrlD}, runes("D"))
	})
	assert.Empty(t, *saved)
}

func TestFocusCycle(t *testing.T) {
	m, _ := newTestModel(t, disney()...)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	send(m, tab)
	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, fieldName, m.form.Active())

	send(m, tab)
	assert.Equal(t, fieldSurname, m.form.Active())

	send(m, tab)
	assert.Equal(t, focusList, m.focus)

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, fieldSurname, m.form.Active())
}

func TestTabStaysOnListWhenFormHidden(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusList, m.focus)
}

func TestLettersTypedIntoFormAreNotCommands(t *testing.T) {
	m, _ := newTestModel(t, disney()...)
	send(m, tea.KeyMsg{Type: tea.KeyTab})

	send(m, runes("q"), runes("n"), runes("D"))
	assert.Equal(t, 2, m.Controller().Len())
	assert.Equal(t, "MickeyqnD", m.form.Fields().Name)
}

func TestReloadMsg(t *testing.T) {
	m, saved := newTestModel(t, disney()...)

	cmd := send(m, ReloadMsg{Records: disney()})
	assert.Nil(t, cmd, "no change channel configured")
	assert.Empty(t, *saved, "identical contents are ignored")

	send(m, runes("j"))
	send(m, ReloadMsg{Records: []records.Record{
		{ID: "B", Name: "Walter", Surname: "Disney"},
		{ID: "C", Name: "Goofy"},
	}})
	assert.Equal(t, records.ID("B"), m.Controller().Selection())
	assert.Equal(t, "Walter", m.form.Fields().Name)
	assert.Len(t, *saved, 1)
	assert.Contains(t, m.View(), "Reloaded 2 records")
}

func TestStaleOwnWriteDoesNotRollBack(t *testing.T) {
	m, saved := newTestModel(t, disney()...)

	send(m, runes("n"))
	send(m, runes("Goofy"), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Len(t, *saved, 2)
	first, latest := (*saved)[0], (*saved)[1]
	require.Equal(t, "Goofy", latest[2].Name)

	// the watcher delivers the older write after the newer one was applied
	send(m, ReloadMsg{Records: first})
	assert.Equal(t, latest, m.Controller().Records())
	assert.Len(t, *saved, 2, "nothing written back")

	send(m, ReloadMsg{Records: latest})
	assert.Equal(t, latest, m.Controller().Records())
	assert.Empty(t, m.pending)

	external := []records.Record{{ID: "Z", Name: "Donald", Surname: "Duck"}}
	send(m, ReloadMsg{Records: external})
	assert.Equal(t, external, m.Controller().Records())
}

func TestOwnWriteHistoryIsBounded(t *testing.T) {
	m, _ := newTestModel(t, disney()...)

	for i := 0; i < maxPendingWrites+5; i++ {
		send(m, runes("n"), tea.KeyMsg{Type: tea.KeyEsc})
	}
	assert.Equal(t, maxPendingWrites+7, m.Controller().Len())
	assert.Len(t, m.pending, maxPendingWrites)
}

func TestReloadMsgFromChannel(t *testing.T) {
	changes := make(chan []records.Record, 1)
	m := New(Options{Seed: disney(), Changes: changes})

	cmd := m.Init()
	require.NotNil(t, cmd)
	changes <- disney()[:1]
	msg := cmd()
	require.IsType(t, ReloadMsg{}, msg)

	next := send(m, msg)
	assert.NotNil(t, next, "keeps listening")
	assert.Equal(t, 1, m.Controller().Len())

	close(changes)
	assert.Nil(t, next())
}

func TestPersistErrorShown(t *testing.T) {
	m := New(Options{
		Seed:        disney(),
		IDGenerator: records.Sequence("id"),
		Persist:     func([]records.Record) error { return errors.New("disk full") },
	})

	send(m, runes("n"))
	assert.Contains(t, m.View(), "disk full")
}

func TestQuitAndHelp(t *testing.T) {
	m, _ := newTestModel(t, disney()...)

	send(m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Nil(t, quitMsg(send(m, runes("q"))), "q closes help first")
	assert.False(t, m.help.ShowAll)

	assert.NotNil(t, quitMsg(send(m, runes("q"))))
	assert.NotNil(t, quitMsg(send(m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestForceQuitWhileHelpOpen(t *testing.T) {
	m, _ := newTestModel(t, disney()...)

	send(m, runes("?"))
	require.True(t, m.help.ShowAll)
	assert.NotNil(t, quitMsg(send(m, tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestCustomKeymap(t *testing.T) {
	keys := keymap.Load(keymap.StyleEmacs, keymap.Overrides{"new": {"a"}})
	m := New(Options{Seed: disney(), Keys: &keys, IDGenerator: records.Sequence("id")})

	send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, records.ID("B"), m.Controller().Selection())

	send(m, runes("a"))
	assert.Equal(t, 3, m.Controller().Len())
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, disney()...)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Mickey Mouse")
}

func quitMsg(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	if msg, ok := cmd().(tea.QuitMsg); ok {
		return msg
	}
	return nil
}

func ids(recs []records.Record) []records.ID {
	out := make([]records.ID, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
