package client

import (
	"errors"
	"fmt"

	"github.com/eduhub/eduhub/internal/netx"
)

var (
	// ErrUnauthenticated means no token was present before a gated action.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnauthorized means the backend rejected the token.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrPayloadTooLarge is returned for HTTP 413 on upload.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrUnavailable covers transport failures and timeouts.
	ErrUnavailable = errors.New("server unavailable")
	// ErrServer is any other non-success response.
	ErrServer = errors.New("server error")
)

// StatusError carries the HTTP status and server message of a failed call.
// It unwraps to one of the sentinels above.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %s (status %d)", e.Op, e.Err, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *StatusError) Unwrap() error { return e.Err }

// ErrorKind is the error taxonomy in a form suitable for result values.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindPayloadTooLarge
	KindUnreachable
	KindServerError
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindPayloadTooLarge:
		return "PayloadTooLarge"
	case KindUnreachable:
		return "Unreachable"
	default:
		return "ServerError"
	}
}

// Kind classifies err. Unknown errors count as server errors, except raw
// transport failures which are Unreachable.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrPayloadTooLarge):
		return KindPayloadTooLarge
	case errors.Is(err, ErrUnavailable), netx.IsTransportError(err):
		return KindUnreachable
	default:
		return KindServerError
	}
}

// StatusCode extracts the HTTP status from err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
