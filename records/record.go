// Package records holds the record store and the controller that keeps a
// list view, a form view and an action bar in sync with it.
package records

import "strings"

// ID identifies a record. IDs are minted by the Controller's IDGenerator.
type ID string

// NoSelection is the Selection value meaning "nothing selected".
const NoSelection ID = ""

// String implements fmt.Stringer.
func (id ID) String() string { return string(id) }

// IsNone reports whether id is the empty selection.
func (id ID) IsNone() bool { return id == NoSelection }

// Fields are the user-editable parts of a record, as returned by a FormView.
type Fields struct {
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
}

// Record is a single person entry.
type Record struct {
	ID      ID     `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
}

// New builds a record with the given id from edited fields.
func New(id ID, f Fields) Record {
	return Record{ID: id, Name: f.Name, Surname: f.Surname}
}

// Fields returns the editable part of the record.
func (r Record) Fields() Fields {
	return Fields{Name: r.Name, Surname: r.Surname}
}

// Summary is the one-line label shown in the list.
func (r Record) Summary() string {
	return strings.TrimSpace(r.Name + " " + r.Surname)
}
