package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified streamkit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err, or "" if err carries none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// --- Common Error Constructors ---

// EmptyValueAccess creates a new Error for a value request on an empty Optional.
func EmptyValueAccess() *Error {
	return &Error{
		Code: ErrCodeEmptyValue, Message: "Optional is empty: no value to get.",
	}
}

// PipelineNotClosed creates a new Error for applying a condition chain that is still open.
func PipelineNotClosed(name string) *Error {
	e := &Error{
		Code: ErrCodePipelineNotClosed, Message: "Condition chain is not closed: invoke Otherwise or Done first.",
	}
	if name != "" {
		e.Details = map[string]any{"chain": name}
	}
	return e
}

// PipelineAlreadyClosed creates a new Error for appending to a closed condition chain.
func PipelineAlreadyClosed(name string) *Error {
	e := &Error{
		Code: ErrCodePipelineAlreadyClosed, Message: "Condition chain is closed: no more branches can be added.",
	}
	if name != "" {
		e.Details = map[string]any{"chain": name}
	}
	return e
}

// NoConditionDefined creates a new Error for adding a fallback before any branch.
func NoConditionDefined() *Error {
	return &Error{
		Code: ErrCodeNoConditionDefined, Message: "No branch defined: add an IfThen branch before Otherwise.",
	}
}

// PipelineConsumed creates a new Error for operating on a drained stream.
func PipelineConsumed(operation string) *Error {
	return &Error{
		Code: ErrCodePipelineConsumed, Message: "Stream was already consumed by a terminal operation.",
		Details: map[string]any{"operation": operation},
	}
}

// InvalidInput creates a new Error for invalid input.
func InvalidInput(field, reason string) *Error {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &Error{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// FileError creates a new Error for a failed file operation.
func FileError(path string, cause error) *Error {
	return &Error{
		Code: ErrCodeFileError, Message: fmt.Sprintf("Unable to process file %s.", path),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// DatabaseError creates a new Error for a database connection error.
func DatabaseError(cause error) *Error {
	return &Error{
		Code: ErrCodeDatabaseError, Message: "A database error occurred. Please try again.",
		Cause: cause,
	}
}
