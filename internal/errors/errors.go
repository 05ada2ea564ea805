// Package errors is the single import for error handling across the
// codebase. Matching on sentinels goes through the stdlib; anything that
// crosses a layer boundary gets a stack trace via pkg/errors, so a storage
// failure logged at the edge still points at the repository call that
// produced it.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the given text and no stack trace. Use it for
// sentinels; failures in flight should carry a stack via Wrap or Errorf.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and a message. Returns nil if err is
// nil, so it is safe on the happy path.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace without changing its message.
// Handlers use it on usecase errors so the trace starts at the route.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error that carries a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
