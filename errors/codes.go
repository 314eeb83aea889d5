package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline state-machine misuse
const (
	// ErrCodeEmptyValue indicates a value was requested from an empty Optional.
	ErrCodeEmptyValue ErrorCode = "EMPTY_VALUE_ACCESS"
	// ErrCodePipelineNotClosed indicates apply was invoked on a condition chain that is still open.
	ErrCodePipelineNotClosed ErrorCode = "PIPELINE_NOT_CLOSED"
	// ErrCodePipelineAlreadyClosed indicates a branch was appended to a condition chain that is already closed.
	ErrCodePipelineAlreadyClosed ErrorCode = "PIPELINE_ALREADY_CLOSED"
	// ErrCodeNoConditionDefined indicates a fallback was added before any branch.
	ErrCodeNoConditionDefined ErrorCode = "NO_CONDITION_DEFINED"
	// ErrCodePipelineConsumed indicates an operation was invoked on a stream that was already drained.
	ErrCodePipelineConsumed ErrorCode = "PIPELINE_ALREADY_CONSUMED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Utility-layer errors
const (
	// ErrCodeFileError indicates a file could not be read or written.
	ErrCodeFileError ErrorCode = "FILE_ERROR"
	// ErrCodeDatabaseError indicates a database connection error.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
