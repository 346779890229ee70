package listform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/tui/theme"
)

const (
	fieldName = iota
	fieldSurname
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Surname"}

// FormPane edits the selected record's name and surname. It implements
// records.FormView. Edits stay local until the controller pulls them with
// Fields on save.
type FormPane struct {
	inputs  [fieldCount]textinput.Model
	active  int
	id      records.ID
	visible bool
	focused bool
}

// NewFormPane returns a hidden, unfocused form.
func NewFormPane() *FormPane {
	f := &FormPane{}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = strings.ToLower(fieldLabels[i])
		in.CharLimit = 128
		in.Width = 32
		f.inputs[i] = in
	}
	return f
}

// SetRecord fills the inputs from r, discarding unsaved edits.
func (f *FormPane) SetRecord(r records.Record) {
	f.id = r.ID
	f.inputs[fieldName].SetValue(r.Name)
	f.inputs[fieldSurname].SetValue(r.Surname)
	for i := range f.inputs {
		f.inputs[i].CursorEnd()
	}
}

// SetVisible shows or hides the form.
func (f *FormPane) SetVisible(visible bool) {
	f.visible = visible
	if !visible {
		f.Blur()
	}
}

// Visible reports whether the form is shown.
func (f *FormPane) Visible() bool {
	return f.visible
}

// Fields returns the current input values with surrounding whitespace trimmed.
func (f *FormPane) Fields() records.Fields {
	return records.Fields{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Surname: strings.TrimSpace(f.inputs[fieldSurname].Value()),
	}
}

// Focus gives keyboard focus to field i.
func (f *FormPane) Focus(i int) tea.Cmd {
	f.focused = true
	f.active = clamp(i, 0, fieldCount-1)
	for j := range f.inputs {
		if j != f.active {
			f.inputs[j].Blur()
		}
	}
	return f.inputs[f.active].Focus()
}

// Blur removes keyboard focus from every field.
func (f *FormPane) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Active returns the index of the focused field.
func (f *FormPane) Active() int {
	return f.active
}

// Update forwards a message to the focused input.
func (f *FormPane) Update(msg tea.Msg) tea.Cmd {
	if !f.focused || !f.visible {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return cmd
}

// View renders the labelled inputs, or nothing when hidden.
func (f *FormPane) View() string {
	if !f.visible {
		return ""
	}
	t := theme.DefaultTheme

	rows := make([]string, 0, fieldCount+1)
	for i := range f.inputs {
		label := t.Label.Render(fieldLabels[i])
		if f.focused && i == f.active {
			label = t.Label.Inherit(t.Highlight).Render(fieldLabels[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, f.inputs[i].View()))
	}
	if !f.id.IsNone() {
		rows = append(rows, t.Label.Render("ID")+t.Muted.Render(f.id.String()))
	}
	return strings.Join(rows, "\n")
}
