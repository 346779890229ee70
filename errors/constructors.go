package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *RolodexError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// RecordNotFound reports a selection or lookup that references an id missing from the store.
func RecordNotFound(id string) *RolodexError {
	return New(ErrCodeRecordNotFound, fmt.Sprintf("record '%s' not found", id)).
		WithDetail("id", id)
}

// NoSelection reports an operation that needs a selected record while none is selected.
func NoSelection(op string) *RolodexError {
	return New(ErrCodeNoSelection, fmt.Sprintf("%s requires a selected record", op)).
		WithDetail("operation", op)
}

// DuplicateID reports two records sharing one id.
func DuplicateID(id string) *RolodexError {
	return New(ErrCodeDuplicateID, fmt.Sprintf("duplicate record id '%s'", id)).
		WithDetail("id", id)
}

// SnapshotRead wraps a failure reading the records snapshot.
func SnapshotRead(path string, err error) *RolodexError {
	return Wrap(err, ErrCodeSnapshotRead, "failed to read records snapshot").
		WithDetail("path", path)
}

// SnapshotWrite wraps a failure writing the records snapshot.
func SnapshotWrite(path string, err error) *RolodexError {
	return Wrap(err, ErrCodeSnapshotWrite, "failed to write records snapshot").
		WithDetail("path", path)
}
