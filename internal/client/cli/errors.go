package cli

import (
	"errors"

	"github.com/eduhub/eduhub/internal/client/catalog"
	"github.com/eduhub/eduhub/internal/client/client"
	"github.com/eduhub/eduhub/internal/client/services"
)

const (
	msgServerUnreachable = "Server connection failed. Please check if the server is running."
	msgLoginFirst        = "Please login as admin first"
	msgOpenSubjectFirst  = "Open a subject first: open <sem> <subject>"
)

var (
	errNoTab     = &msgError{msg: msgOpenSubjectFirst}
	errNotAdmin  = &msgError{msg: msgLoginFirst, err: client.ErrUnauthenticated}
	errBadNumber = errors.New("expected an item number from the list")
)

// msgError carries the exact text shown to the user.
type msgError struct {
	msg string
	err error
}

func (e *msgError) Error() string { return e.msg }

func (e *msgError) Unwrap() error { return e.err }

// userMessage turns a handler error into one line for the terminal.
func userMessage(err error) string {
	var me *msgError
	var oe *services.OpError
	switch {
	case errors.As(err, &me):
		return me.msg
	case errors.As(err, &oe):
		return oe.Error()
	case errors.Is(err, services.ErrCancelled):
		return "Cancelled"
	case errors.Is(err, catalog.ErrUnknownSemester), errors.Is(err, catalog.ErrUnknownSubject):
		return err.Error()
	}

	switch client.Kind(err) {
	case client.KindUnauthenticated:
		return msgLoginFirst
	case client.KindUnauthorized:
		return "Authentication failed. Please login again."
	case client.KindUnreachable:
		return msgServerUnreachable
	}
	return "Error: " + err.Error()
}
