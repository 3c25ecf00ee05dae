// Package errors is the error toolkit shared by the proxy's layers: stdlib matching for
// sentinels and provider errors, pkg/errors for stack annotation at layer boundaries.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Find returns the first error of type T in err's tree.
func Find[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// New returns an error carrying a stack trace.
func New(message string) error {
	return pkgerrors.New(message)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace at the call site.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
