// Package logger provides structured logging for streamkit built on zerolog.
//
// The stream core never logs; this package serves the utility layer
// (execution timing, file and database helpers) and library consumers that
// want a preconfigured logger.
package logger
