package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBookNotFound indicates the requested book does not exist
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidCredentials indicates the submitted credentials were rejected
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrFormatUnavailable indicates a book is not offered in the requested format
	ErrFormatUnavailable = errors.New("format not available")
)
