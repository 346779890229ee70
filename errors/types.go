package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Record store errors
	ErrCodeRecordNotFound ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeNoSelection    ErrorCode = "NO_SELECTION"
	ErrCodeDuplicateID    ErrorCode = "DUPLICATE_ID"

	// Snapshot persistence errors
	ErrCodeSnapshotRead  ErrorCode = "SNAPSHOT_READ"
	ErrCodeSnapshotWrite ErrorCode = "SNAPSHOT_WRITE"

	// General errors
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
)

// RolodexError represents a structured error with context
type RolodexError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *RolodexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RolodexError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *RolodexError) WithDetail(key string, value interface{}) *RolodexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *RolodexError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new RolodexError
func New(code ErrorCode, message string) *RolodexError {
	return &RolodexError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RolodexError
func Wrap(err error, code ErrorCode, message string) *RolodexError {
	return &RolodexError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific RolodexError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, looking through wrapped causes.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	rErr, ok := err.(*RolodexError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return rErr.Code
}
