package cose

import "fmt"

// ErrNoProtectedHeaderValue is returned when a required protected header
// label is absent from a decoded COSE_Sign1 message.
type ErrNoProtectedHeaderValue struct {
	Label int64
}

func (e *ErrNoProtectedHeaderValue) Error() string {
	return fmt.Sprintf("cose: no value for protected header label %d", e.Label)
}

// ErrUnexpectedProtectedHeaderType is returned when a protected header
// value decodes to a Go type other than the one expected for its label.
type ErrUnexpectedProtectedHeaderType struct {
	Label    int64
	Expected string
}

func (e *ErrUnexpectedProtectedHeaderType) Error() string {
	return fmt.Sprintf("cose: protected header label %d: expected %s", e.Label, e.Expected)
}
