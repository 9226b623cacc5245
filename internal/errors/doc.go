// Package errors provides error handling conventions for agentdeck.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type carrying a process exit code and an optional user-facing suggestion,
// and re-exports the wrap helpers from cockroachdb/errors so the rest of the
// codebase imports a single errors package.
//
// Sentinel errors are compared with [Is]:
//
//	if errors.Is(err, errors.ErrNotFound) { ... }
//
// Commands return *ExitError from RunE; main converts the code and prints
// the suggestion, if any, on stderr.
package errors
