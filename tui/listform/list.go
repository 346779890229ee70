package listform

import (
	"strings"

	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/tui/theme"
)

// ListPane shows one line per record and tracks a cursor. It implements
// records.ListView.
//
// User movement reports the new id through OnSelect. The programmatic setters
// raise suppress around their updates, so the controller never hears about
// changes it made itself.
type ListPane struct {
	// OnSelect receives the id under the cursor after a user move.
	OnSelect func(records.ID)

	records  []records.Record
	cursor   int
	offset   int
	suppress bool

	focused bool
	width   int
	height  int
}

// NewListPane returns an empty list with nothing selected.
func NewListPane() *ListPane {
	return &ListPane{cursor: -1}
}

// SetRecords replaces the displayed records. The cursor stays on the same id
// when it is still present.
func (l *ListPane) SetRecords(recs []records.Record) {
	l.suppress = true
	defer func() { l.suppress = false }()

	current := l.Selected()
	l.records = append(l.records[:0:0], recs...)
	l.setCursor(l.indexOf(current))
	l.scrollToCursor()
}

// SetSelection moves the cursor to id, or clears it for NoSelection or an id
// that is not displayed.
func (l *ListPane) SetSelection(id records.ID) {
	l.suppress = true
	defer func() { l.suppress = false }()

	l.setCursor(l.indexOf(id))
}

// Selected returns the id under the cursor, or NoSelection.
func (l *ListPane) Selected() records.ID {
	if l.cursor < 0 || l.cursor >= len(l.records) {
		return records.NoSelection
	}
	return l.records[l.cursor].ID
}

// Len returns the number of displayed records.
func (l *ListPane) Len() int {
	return len(l.records)
}

// Move shifts the cursor by delta rows, clamped to the list. From no
// selection, any move lands on the first row.
func (l *ListPane) Move(delta int) {
	if len(l.records) == 0 {
		return
	}
	if l.cursor < 0 {
		l.setCursor(0)
		return
	}
	l.setCursor(clamp(l.cursor+delta, 0, len(l.records)-1))
}

// MoveTo places the cursor on row i, clamped to the list.
func (l *ListPane) MoveTo(i int) {
	if len(l.records) == 0 {
		return
	}
	l.setCursor(clamp(i, 0, len(l.records)-1))
}

// Top moves the cursor to the first row.
func (l *ListPane) Top() { l.MoveTo(0) }

// Bottom moves the cursor to the last row.
func (l *ListPane) Bottom() { l.MoveTo(len(l.records) - 1) }

// SetFocused marks the pane as receiving navigation keys.
func (l *ListPane) SetFocused(focused bool) {
	l.focused = focused
}

// SetSize sets the pane's inner dimensions.
func (l *ListPane) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.scrollToCursor()
}

func (l *ListPane) setCursor(i int) {
	if i == l.cursor {
		return
	}
	l.cursor = i
	l.scrollToCursor()
	l.emit()
}

func (l *ListPane) emit() {
	if l.suppress || l.OnSelect == nil {
		return
	}
	l.OnSelect(l.Selected())
}

func (l *ListPane) indexOf(id records.ID) int {
	if id.IsNone() {
		return -1
	}
	for i, r := range l.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (l *ListPane) visibleRows() int {
	if l.height <= 0 {
		return len(l.records)
	}
	return l.height
}

func (l *ListPane) scrollToCursor() {
	rows := l.visibleRows()
	if l.cursor < 0 || rows <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if last := len(l.records) - rows; l.offset > last {
		l.offset = last
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible rows.
func (l *ListPane) View() string {
	t := theme.DefaultTheme

	if len(l.records) == 0 {
		return t.Muted.Render("No records. Press n to add one.")
	}

	end := l.offset + l.visibleRows()
	if end > len(l.records) {
		end = len(l.records)
	}

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		label := l.records[i].Summary()
		if label == "" {
			label = t.Muted.Render("(unnamed)")
		}

		switch {
		case i == l.cursor && l.focused:
			lines = append(lines, t.Cursor.Render("› ")+t.Selected.Render(label))
		case i == l.cursor:
			lines = append(lines, "  "+t.SelectedUnfocused.Render(label))
		default:
			lines = append(lines, "  "+label)
		}
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
