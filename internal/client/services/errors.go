package services

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired  = errors.New("title required")
	ErrNoFileSelected = errors.New("no file selected")
	ErrNoFile         = errors.New("no file available")
	ErrCancelled      = errors.New("cancelled")
	ErrInvalidQuery   = errors.New("invalid content query")
)

// OpError is a user-facing failure of an action on a named item. Message
// is what the user sees; Err keeps the classified cause.
type OpError struct {
	Op      string
	Title   string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("Failed to %s %q: %s", e.Op, e.Title, e.Message)
}

func (e *OpError) Unwrap() error { return e.Err }
