// Package utility provides the simple helpers surrounding the stream core:
// date parsing and generation, file discovery, JSON and CSV loading, eager
// slice transforms, and execution-time logging. These are thin wrappers
// with no pipeline state; they exist to produce sources for streams and to
// consume their results.
package utility
