package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidState     = errors.New("invalid state")
	ErrValidation       = errors.New("validation error")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error carries a user facing detail while unwrapping to one of the kinds
// above, so callers match it with errors.Is.
type Error struct {
	Kind   error
	Detail string
}

func NewError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}
