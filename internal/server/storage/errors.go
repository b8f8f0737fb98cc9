package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this id already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrDocumentNotFound indicates that the user has no stored progress fields
	ErrDocumentNotFound = errors.New("progress document not found")
)
