package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by row-targeting writes when no row matches the
// given id. Absence is a normal outcome that callers branch on, distinct
// from a storage failure. Point lookups signal the same condition by
// returning (nil, nil).
var ErrNotFound = errors.New("record not found")

// DecodeError reports that a stored structured field could not be parsed
// back into its logical form. It is surfaced distinctly from storage
// failures so callers can treat it as corrupt configuration rather than
// an engine problem.
type DecodeError struct {
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode stored column %s: %v", e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
