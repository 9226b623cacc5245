package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes returned to the operating system.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrMissingName indicates a required name field is missing.
	ErrMissingName = errors.New("name is required")

	// ErrNotFound indicates the requested entity was not found in the store.
	ErrNotFound = errors.New("not found")

	// ErrNameImmutable indicates an attempt to rename an entity whose name
	// is its storage key.
	ErrNameImmutable = errors.New("name cannot be changed after creation")

	// ErrInvalidName indicates an entity name that cannot be used as a
	// storage key.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Re-exported helpers from cockroachdb/errors so callers only import this
// package.
var (
	New        = errors.New
	Newf       = errors.Newf
	Wrap       = errors.Wrap
	Wrapf      = errors.Wrapf
	Is         = errors.Is
	As         = errors.As
	WithDetail = errors.WithDetail
)

// WithDetailf annotates err with a formatted user-facing detail string.
func WithDetailf(err error, format string, args ...any) error {
	return errors.WithDetailf(err, format, args...)
}

// ExitError wraps an error with an exit code and optional suggestion for CLI
// use. It implements the error interface and supports unwrapping.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError creates an ExitError with ExitUser code and a standard
// suggestion pointing at the config file.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Check your agentdeck config file (agentdeck config path)",
	}
}

// Error returns the message of the underlying error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As to
// examine the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
