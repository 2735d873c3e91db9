package errs

import (
	"errors"
	"fmt"
)

// ErrForbidden is the sentinel wrapped by every ForbiddenError.
var ErrForbidden = errors.New("access is forbidden")

// ForbiddenError reports that the acting user may not perform Action, usually because of
// the active role or resource ownership.
type ForbiddenError struct {
	Action string
	Cause  error
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{
		Action: action,
		Cause:  cause,
	}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
