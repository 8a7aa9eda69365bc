// Package errors provides error types and utilities for shabnam.
// It extends the standard errors package with recon sentinels and exit-code mapping.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recon run.
var (
	// ErrInvalidDomain indicates the target failed the apex-domain format check
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrSubdomainInput indicates the target starts with a common subdomain label
	ErrSubdomainInput = errors.New("domain appears to be a subdomain")

	// ErrApproachRequired indicates neither or both of fast/slow were chosen
	ErrApproachRequired = errors.New("exactly one approach is required")

	// ErrUsage indicates the command line itself was malformed
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidConfig indicates a configuration value could not be accepted
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWorkspace indicates the output directory tree could not be provisioned
	ErrWorkspace = errors.New("workspace provisioning failed")

	// ErrMissingCredential indicates an API key prompt was answered with nothing
	ErrMissingCredential = errors.New("missing credential")

	// ErrMissingTool indicates a required external binary is not on PATH
	ErrMissingTool = errors.New("required tool not found")

	// ErrCommandFailed indicates a step ran and exited non-zero
	ErrCommandFailed = errors.New("command failed")

	// ErrCommandException indicates a step could not be run at all
	ErrCommandException = errors.New("command exception")

	// ErrMissingInput indicates a step's declared input file does not exist
	ErrMissingInput = errors.New("missing step input")

	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrAborted indicates the run was cancelled before completion
	ErrAborted = errors.New("run aborted")
)

// Exit codes returned by the CLI.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// kindError reads as msg but matches kind through Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// WithKind returns an error whose message is msg and whose chain holds kind.
func WithKind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsValidation reports whether err was caused by bad user input or configuration.
func IsValidation(err error) bool {
	return Is(err, ErrInvalidDomain) ||
		Is(err, ErrSubdomainInput) ||
		Is(err, ErrApproachRequired) ||
		Is(err, ErrUsage) ||
		Is(err, ErrInvalidConfig)
}

// IsCommandFailure reports whether err came from a failing or unrunnable step.
func IsCommandFailure(err error) bool {
	return Is(err, ErrCommandFailed) || Is(err, ErrCommandException)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsAborted reports whether the run was cancelled
func IsAborted(err error) bool {
	return Is(err, ErrAborted)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsValidation(err):
		return ExitUsage
	default:
		return ExitFailed
	}
}
