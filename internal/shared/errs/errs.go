package errs

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrSelfReference = errors.New("self reference")
	ErrValidation    = errors.New("validation failed")
	ErrConsistency   = errors.New("consistency conflict")
)
