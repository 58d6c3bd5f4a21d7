package models

import "errors"

// Domain specific errors. Out-of-domain text, unsupported durations and
// thin catalog regions are represented as data, not as errors; these
// sentinels cover contract violations and the storage/auth plumbing.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrConflict        = errors.New("item already exists or conflict")
	ErrUnauthenticated = errors.New("authentication required or invalid credentials")
	ErrForbidden       = errors.New("action forbidden")
	ErrBadRequest      = errors.New("bad request")
	ErrValidation      = errors.New("validation failed")
	ErrEmailTaken      = errors.New("email already registered")
)
