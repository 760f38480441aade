// Package errz provides the small set of error helpers used across the
// module.
package errz

import (
	stderrors "errors"
	"fmt"
)

// Errorf returns an error with the given formatted message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Wrap prefixes err with msg, preserving the error chain.
//
// Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf prefixes err with a formatted message, preserving the error chain.
//
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Join combines errs into a single error, skipping nils.
//
// Returns nil if every error is nil.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
