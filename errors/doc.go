// Package errors provides unified error handling for streamkit.
// It implements structured error types with machine-readable error codes
// covering pipeline state-machine misuse and utility-layer failures.
package errors
