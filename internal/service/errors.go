package service

import "errors"

var (
	// ErrValidation marks a malformed quiz or submission; nothing was written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a quiz or result id that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks a caller acting on a record they do not own.
	ErrForbidden = errors.New("forbidden")
)
