package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrCursorNotFound indicates that the workspace has no stored
	// sync cursor yet
	ErrCursorNotFound = errors.New("sync cursor not found")
)
