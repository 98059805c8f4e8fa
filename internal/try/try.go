// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides deferrable helpers which fold panics and
// close failures into a named error return value.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError represents a recovered panic value.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error, e.g. a [runtime.Error].
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// CloseError represents a failed call to [io.Closer.Close].
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Recover must be deferred. A recovered panic is added, as a
// [PanicError], to the error err points to.
func Recover(err *error) {
	if r := recover(); r != nil {
		join(err, PanicError{Value: r})
	}
}

// Close must be deferred. If v is an [io.Closer] it is closed and a
// failure is added, as a [CloseError], to the error err points to.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if cerr := c.Close(); cerr != nil {
		join(err, CloseError{Cause: cerr})
	}
}

// join keeps *err untouched in the common case of there being
// nothing to join with.
func join(err *error, add error) {
	if *err == nil {
		*err = add
		return
	}
	*err = errors.Join(*err, add)
}
