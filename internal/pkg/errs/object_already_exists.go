package errs

import (
	"errors"
	"fmt"
)

// ErrObjectAlreadyExists is the sentinel wrapped by every ObjectAlreadyExistsError.
var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError reports a uniqueness violation (duplicate email, order number).
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrObjectAlreadyExists, e.ParamName, sanitizeV(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitizeV(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
