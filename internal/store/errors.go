package store

import "errors"

// Base error kinds for the engine. Concrete failures wrap one of these with
// fmt.Errorf("%w: ...") so callers can branch with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)
