package records

// ListView displays record summaries and reports the user's focus changes
// back through Controller.SelectionChanged.
//
// SetRecords and SetSelection must not themselves trigger SelectionChanged;
// the controller calls them while refreshing and expects no echo.
type ListView interface {
	SetRecords(recs []Record)
	SetSelection(id ID)
}

// FormView shows and edits a single record. Fields is pulled on save.
type FormView interface {
	SetRecord(r Record)
	SetVisible(visible bool)
	Fields() Fields
}

// ActionTrigger owns the new/save/delete controls. Only save and delete are
// hidden; "new" is always available.
type ActionTrigger interface {
	SetVisible(visible bool)
}

// Observer is notified with an ordered copy of the store after each mutation.
type Observer func(recs []Record)
