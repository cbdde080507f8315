// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes.
const (
	exitRejected = 1 // key or input rejected by the cipher
	exitUsage    = 2 // malformed flags or arguments
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func rejected(err error) error { return &ExitError{Code: exitRejected, Err: err} }

func usage(err error) error { return &ExitError{Code: exitUsage, Err: err} }
