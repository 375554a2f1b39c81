// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package async

import (
	"fmt"

	"go.uber.org/multierr"
)

// PanicError is the error a Result completes with when the function started by Go panics.
type PanicError struct {
	// Value is the value passed to panic
	Value interface{}

	// Stack is the goroutine's stack trace at the time of the panic
	Stack []byte
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("async: recovered panic: %v", pe.Value)
}

// Unwrap exposes the panic value if it was itself an error.
func (pe *PanicError) Unwrap() error {
	if err, ok := pe.Value.(error); ok {
		return err
	}

	return nil
}

// Errors returns every individual failure carried by err.  An err produced by Join or Join2
// yields each failed input's error, in input order.  A nil err yields an empty slice, and any
// other err yields a single element slice.
func Errors(err error) []error {
	return multierr.Errors(err)
}
