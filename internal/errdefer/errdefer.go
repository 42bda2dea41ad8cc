// Package errdefer provides functions for running operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
//
// Use these inside a defer statement with a named error return.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closer,
// and joins any error returned with the given error.
func Close(err *error, closer io.Closer) {
	Invoke(err, closer.Close)
}

// Invoke calls fn,
// and joins any error returned with the given error.
//
// This is for cleanup functions that aren't attached to an io.Closer,
// like the flush function of a buffered writer.
func Invoke(err *error, fn func() error) {
	if ferr := fn(); ferr != nil {
		*err = errors.Join(*err, ferr)
	}
}
