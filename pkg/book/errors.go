package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a contact or phone number is not present.
var ErrNotFound = errors.New("book: not found")

// ValidationError reports a field value rejected at construction time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("book: invalid %s: %s", e.Field, e.Reason)
}
