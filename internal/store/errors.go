package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned whenever an id does not resolve to a row,
// regardless of which store or operation was asked.
var ErrNotFound = errors.New("record not found")

// ValidationError marks input the store refuses to persist, such as an
// empty category name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
