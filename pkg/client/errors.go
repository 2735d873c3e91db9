package client

import (
	"errors"
	"fmt"
	"net/http"

	"hyperlocal/internal/generated/servers"
)

// Kind sentinels. Every *Error returned by the client matches exactly one of them with errors.Is.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAlreadyAssigned   = errors.New("already assigned")
	ErrInvalidOTP        = errors.New("invalid otp")
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrServer            = errors.New("server error")
)

// ErrNoSession is returned by calls that need a token when none is held.
var ErrNoSession = errors.New("no active session")

var kinds = map[string]error{
	servers.CodeUnauthorized:      ErrUnauthorized,
	servers.CodeForbidden:         ErrForbidden,
	servers.CodeInvalidTransition: ErrInvalidTransition,
	servers.CodeAlreadyAssigned:   ErrAlreadyAssigned,
	servers.CodeInvalidOTP:        ErrInvalidOTP,
	servers.CodeValidationError:   ErrValidation,
	servers.CodeNotFound:          ErrNotFound,
	servers.CodeConflict:          ErrConflict,
	servers.CodeInternal:          ErrServer,
}

// Error is an API failure. Message is meant for the end user.
type Error struct {
	Status  int
	Code    string
	Message string

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// newError classifies a response by its error code, falling back to the status when the body
// carries none.
func newError(status int, body servers.Error) *Error {
	kind, ok := kinds[body.Code]
	if !ok {
		kind = kindForStatus(status)
	}
	code := body.Code
	if code == "" {
		code = codeFor(kind)
	}
	msg := body.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Code: code, Message: msg, kind: kind}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrInvalidOTP
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return ErrServer
	}
}

func codeFor(kind error) string {
	for code, k := range kinds {
		if k == kind {
			return code
		}
	}
	return servers.CodeInternal
}

// RefetchError reports a mutation that succeeded on the server whose result could not be read
// back. The value returned alongside it is the mutation's own response.
type RefetchError struct {
	Resource string
	Err      error
}

func (e *RefetchError) Error() string {
	return fmt.Sprintf("refetch %s: %v", e.Resource, e.Err)
}

func (e *RefetchError) Unwrap() error {
	return e.Err
}
