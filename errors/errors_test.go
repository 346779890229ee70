package errors

import (
	"fmt"
	"testing"
)

func TestRolodexError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeRecordNotFound, "record not found")
	if err.Code != ErrCodeRecordNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRecordNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeSnapshotWrite, "write failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeSnapshotWrite) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeRecordNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("id", "abc").WithDetail("count", 2)
	if detailed.Details["id"] != "abc" {
		t.Error("WithDetail should add details")
	}
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	inner := NoSelection("save")
	outer := fmt.Errorf("handling key: %w", inner)

	if got := GetCode(outer); got != ErrCodeNoSelection {
		t.Errorf("expected %s, got %s", ErrCodeNoSelection, got)
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("plain errors should have no code")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("nil error should never match")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := RecordNotFound("abc")
	if err.Code != ErrCodeRecordNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeRecordNotFound, err.Code)
	}
	if err.Details["id"] != "abc" {
		t.Error("RecordNotFound should include id detail")
	}

	err = NoSelection("delete")
	if err.Details["operation"] != "delete" {
		t.Error("NoSelection should include operation detail")
	}

	err = SnapshotRead("/tmp/records.yml", fmt.Errorf("boom"))
	if err.Details["path"] != "/tmp/records.yml" || err.Cause == nil {
		t.Error("SnapshotRead should carry path and cause")
	}
}
