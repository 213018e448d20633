package models

import "errors"

var (
	// ErrNotFound means no record matched the given id or slug.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the payload violates a schema constraint.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means a unique field is already taken.
	ErrConflict = errors.New("already exists")
	// ErrUpstream means the media delegate failed.
	ErrUpstream = errors.New("media upstream failure")
	// ErrUnauthorized means the credentials or token were rejected.
	ErrUnauthorized = errors.New("unauthorized")
)
