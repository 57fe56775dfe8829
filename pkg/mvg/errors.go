package mvg

import (
	"errors"
	"fmt"
)

// Every failure returned by Client matches exactly one of these with errors.Is.
var (
	ErrInvalidRequestTarget = errors.New("invalid request target")
	ErrTransport            = errors.New("transport error")
	ErrUnexpectedStatus     = errors.New("unexpected status")
	ErrDecode               = errors.New("decode error")
)

var errMissingHost = errors.New("missing scheme or host")

// Error carries the failure kind together with what was being asked for.
type Error struct {
	Kind error

	// Subject is the search term, station id or id pair of the request.
	Subject    string
	StatusCode int

	Err error
}

func (e *Error) Error() string {
	message := e.Kind.Error()
	if e.Subject != "" {
		message = fmt.Sprintf("%s for %s", message, e.Subject)
	}
	if e.StatusCode != 0 {
		message = fmt.Sprintf("%s (HTTP %d)", message, e.StatusCode)
	}
	if e.Err != nil {
		message = fmt.Sprintf("%s: %s", message, e.Err)
	}
	return message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsNotFound reports whether err is the upstream way of saying an id is unknown.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnexpectedStatus)
}
