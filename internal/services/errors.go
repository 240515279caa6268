package services

import "errors"

var (
	// ErrNotFound means the id has no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the acting user failed the authorization
	// predicate; nothing was changed.
	ErrForbidden = errors.New("forbidden")
)
