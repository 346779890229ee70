package listform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/rolodex/records"
)

// ReloadMsg carries records read back from the snapshot after it changed on disk.
type ReloadMsg struct {
	Records []records.Record
}

// statusMsg replaces the status line.
type statusMsg struct {
	text string
	err  bool
}

// WaitForChange returns a command that delivers the next value from changes
// as a ReloadMsg. It returns nil once changes is closed.
func WaitForChange(changes <-chan []records.Record) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		recs, ok := <-changes
		if !ok {
			return nil
		}
		return ReloadMsg{Records: recs}
	}
}
