package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Invocation errors
	ErrUsage         ErrorCode = "USAGE"
	ErrInputNotFound ErrorCode = "INPUT_NOT_FOUND"
	ErrUnsupported   ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// Credential errors
	ErrCredentialMissing ErrorCode = "CREDENTIAL_MISSING"
	ErrCredentialEmpty   ErrorCode = "CREDENTIAL_EMPTY"
	ErrCredentialRead    ErrorCode = "CREDENTIAL_READ"

	// Conflict errors
	ErrConflictCancelled ErrorCode = "CONFLICT_CANCELLED"
	ErrRenameExhausted   ErrorCode = "RENAME_EXHAUSTED"

	// Transform engine errors
	ErrProcessLaunch  ErrorCode = "PROCESS_LAUNCH"
	ErrProcessFailure ErrorCode = "PROCESS_FAILURE"

	// Collaborator errors
	ErrNotifier ErrorCode = "NOTIFIER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// SavecryptError represents a structured error with code and details
type SavecryptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SavecryptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SavecryptError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SavecryptError) Is(target error) bool {
	var targetErr *SavecryptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SavecryptError with the given code and message
func New(code ErrorCode, message string) *SavecryptError {
	return &SavecryptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SavecryptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SavecryptError {
	return &SavecryptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SavecryptError
func Wrap(err error, code ErrorCode, message string) *SavecryptError {
	if err == nil {
		return nil
	}
	return &SavecryptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SavecryptError {
	if err == nil {
		return nil
	}
	return &SavecryptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SavecryptError) WithDetail(key string, value interface{}) *SavecryptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scErr *SavecryptError
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SavecryptError
func GetErrorCode(err error) ErrorCode {
	var scErr *SavecryptError
	if errors.As(err, &scErr) {
		return scErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SavecryptError
func GetErrorDetails(err error) map[string]interface{} {
	var scErr *SavecryptError
	if errors.As(err, &scErr) {
		return scErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the person running the tool,
// without the code prefix.
func UserMessage(err error) string {
	var scErr *SavecryptError
	if errors.As(err, &scErr) {
		return scErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ExitCode maps an error to the process exit status. A cancelled conflict is
// a user decision and exits cleanly.
func ExitCode(err error) int {
	if err == nil || IsErrorCode(err, ErrConflictCancelled) {
		return 0
	}
	return 1
}
